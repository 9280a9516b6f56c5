package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date datatypes.Date `gorm:"not null" json:"date"`
	Time datatypes.Time `gorm:"not null" json:"time"`

	BranchID uint   `gorm:"not null;index" json:"branch_id"`
	Branch   Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"branch"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	TechnicianID uint       `gorm:"not null;index" json:"technician_id"`
	Technician   Technician `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"technician"`

	PaymentID *uint    `gorm:"index" json:"payment_id"`
	Payment   *Payment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payment"`

	DiscountID *uint     `gorm:"index" json:"discount_id"`
	Discount   *Discount `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"discount"`

	Warranty      bool            `gorm:"not null;default:false" json:"warranty"`
	Commission    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"commission"`
	Tip           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"tip"`
	Courtesy      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"courtesy"`
	DiscountPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount_price"`
	FinalIncome   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"final_income"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
