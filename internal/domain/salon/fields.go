package salon

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// Field sets accepted for catalog entities, both on their own endpoints and
// embedded in technician and appointment payloads. Embedded values are
// resolved by exact match on every field below.

type BranchFields struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Address   string  `json:"address" binding:"max=255"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (f BranchFields) Apply(b *models.Branch) error {
	start, err := optionalClock(f.StartTime)
	if err != nil {
		return err
	}
	end, err := optionalClock(f.EndTime)
	if err != nil {
		return err
	}

	b.Name = f.Name
	b.Address = f.Address
	b.StartTime = start
	b.EndTime = end
	return nil
}

func BranchFieldsOf(b *models.Branch) BranchFields {
	return BranchFields{
		Name:      b.Name,
		Address:   b.Address,
		StartTime: formatOptionalClock(b.StartTime),
		EndTime:   formatOptionalClock(b.EndTime),
	}
}

type SkillFields struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (f SkillFields) Apply(s *models.Skill) error {
	s.Name = f.Name
	return nil
}

func SkillFieldsOf(s *models.Skill) SkillFields {
	return SkillFields{Name: s.Name}
}

type ServiceFields struct {
	Name  string           `json:"name" binding:"required,max=100"`
	Price *decimal.Decimal `json:"price" binding:"required,gte=0,lte=99999999.99,decimal2"`
}

func (f ServiceFields) Apply(s *models.Service) error {
	s.Name = f.Name
	s.Price = amount(f.Price)
	return nil
}

func ServiceFieldsOf(s *models.Service) ServiceFields {
	price := s.Price
	return ServiceFields{Name: s.Name, Price: &price}
}

type PaymentFields struct {
	FormatCode  string `json:"format_code" binding:"required,max=10"`
	Description string `json:"description" binding:"required,max=255"`
}

func (f PaymentFields) Apply(p *models.Payment) error {
	p.FormatCode = f.FormatCode
	p.Description = f.Description
	return nil
}

func PaymentFieldsOf(p *models.Payment) PaymentFields {
	return PaymentFields{FormatCode: p.FormatCode, Description: p.Description}
}

type DiscountFields struct {
	Description string           `json:"description" binding:"required,max=255"`
	Value       *decimal.Decimal `json:"value" binding:"required,gte=0,lte=999.99,decimal2"`
}

func (f DiscountFields) Apply(d *models.Discount) error {
	d.Description = f.Description
	d.Value = amount(f.Value)
	return nil
}

func DiscountFieldsOf(d *models.Discount) DiscountFields {
	value := d.Value
	return DiscountFields{Description: d.Description, Value: &value}
}

type PromoFields struct {
	Weekday int    `json:"weekday" binding:"required,min=1,max=7"`
	Name    string `json:"name" binding:"required,max=100"`
}

func (f PromoFields) Apply(p *models.Promo) error {
	p.Weekday = f.Weekday
	p.Name = f.Name
	return nil
}

func PromoFieldsOf(p *models.Promo) PromoFields {
	return PromoFields{Weekday: p.Weekday, Name: p.Name}
}

type ClientFields struct {
	Name     string `json:"name" binding:"required,max=100"`
	LastName string `json:"last_name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"required,max=15"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Birthday string `json:"birthday" binding:"required,datetime=2006-01-02"`
	Comments string `json:"comments" binding:"required"`
}

func (f ClientFields) Apply(c *models.Client) error {
	birthday, err := ParseDate(f.Birthday)
	if err != nil {
		return err
	}

	c.Name = f.Name
	c.LastName = f.LastName
	c.Phone = f.Phone
	c.Email = f.Email
	c.Birthday = birthday
	c.Comments = f.Comments
	return nil
}

func ClientFieldsOf(c *models.Client) ClientFields {
	return ClientFields{
		Name:     c.Name,
		LastName: c.LastName,
		Phone:    c.Phone,
		Email:    c.Email,
		Birthday: FormatDate(c.Birthday),
		Comments: c.Comments,
	}
}

func amount(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
