package dto

import (
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

type BranchDTO struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func Branch(b *models.Branch) BranchDTO {
	return BranchDTO{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		StartTime: clock(b.StartTime),
		EndTime:   clock(b.EndTime),
	}
}

type SkillDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func Skill(s *models.Skill) SkillDTO {
	return SkillDTO{ID: s.ID, Name: s.Name}
}

type ServiceDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func Service(s *models.Service) ServiceDTO {
	return ServiceDTO{ID: s.ID, Name: s.Name, Price: s.Price.StringFixed(2)}
}

type PaymentDTO struct {
	ID          uint   `json:"id"`
	FormatCode  string `json:"format_code"`
	Description string `json:"description"`
}

func Payment(p *models.Payment) PaymentDTO {
	return PaymentDTO{ID: p.ID, FormatCode: p.FormatCode, Description: p.Description}
}

type DiscountDTO struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Value       string `json:"value"`
}

func Discount(d *models.Discount) DiscountDTO {
	return DiscountDTO{ID: d.ID, Description: d.Description, Value: d.Value.StringFixed(2)}
}

type PromoDTO struct {
	ID      uint   `json:"id"`
	Weekday int    `json:"weekday"`
	Name    string `json:"name"`
}

func Promo(p *models.Promo) PromoDTO {
	return PromoDTO{ID: p.ID, Weekday: p.Weekday, Name: p.Name}
}

type ClientDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
	Comments string `json:"comments"`
}

func Client(c *models.Client) ClientDTO {
	return ClientDTO{
		ID:       c.ID,
		Name:     c.Name,
		LastName: c.LastName,
		Phone:    c.Phone,
		Email:    c.Email,
		Birthday: salon.FormatDate(c.Birthday),
		Comments: c.Comments,
	}
}

func clock(t *datatypes.Time) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
