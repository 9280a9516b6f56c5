package appointment

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
)

// ===============================
// Payloads
// ===============================

// Input is the create / full update payload. Branch, client, technician and
// service are required; payment and discount are optional.
type Input struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Time string `json:"time" binding:"required"`

	Branch     *salon.BranchFields   `json:"branch" binding:"required"`
	Client     *salon.ClientFields   `json:"client" binding:"required"`
	Technician *salon.TechnicianRef  `json:"technician" binding:"required"`
	Service    *salon.ServiceFields  `json:"service" binding:"required"`
	Payment    *salon.PaymentFields  `json:"payment"`
	Discount   *salon.DiscountFields `json:"discount"`

	Warranty      *bool            `json:"warranty"`
	Commission    *decimal.Decimal `json:"commission" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
	Tip           *decimal.Decimal `json:"tip" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
	Courtesy      *decimal.Decimal `json:"courtesy" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
	DiscountPrice *decimal.Decimal `json:"discount_price" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
	FinalIncome   *decimal.Decimal `json:"final_income" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
}

// Patch is the partial update payload; nil fields are left untouched.
type Patch struct {
	Date *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time *string `json:"time"`

	Branch     *salon.BranchFields   `json:"branch"`
	Client     *salon.ClientFields   `json:"client"`
	Technician *salon.TechnicianRef  `json:"technician"`
	Service    *salon.ServiceFields  `json:"service"`
	Payment    *salon.PaymentFields  `json:"payment"`
	Discount   *salon.DiscountFields `json:"discount"`

	Warranty      *bool            `json:"warranty"`
	Commission    *decimal.Decimal `json:"commission" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
	Tip           *decimal.Decimal `json:"tip" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
	Courtesy      *decimal.Decimal `json:"courtesy" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
	DiscountPrice *decimal.Decimal `json:"discount_price" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
	FinalIncome   *decimal.Decimal `json:"final_income" binding:"omitempty,gte=0,lte=99999999.99,decimal2"`
}

func (in Input) Patch() Patch {
	return Patch{
		Date:          &in.Date,
		Time:          &in.Time,
		Branch:        in.Branch,
		Client:        in.Client,
		Technician:    in.Technician,
		Service:       in.Service,
		Payment:       in.Payment,
		Discount:      in.Discount,
		Warranty:      in.Warranty,
		Commission:    in.Commission,
		Tip:           in.Tip,
		Courtesy:      in.Courtesy,
		DiscountPrice: in.DiscountPrice,
		FinalIncome:   in.FinalIncome,
	}
}
