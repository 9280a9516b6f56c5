package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Discount struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Description string          `gorm:"size:255;not null" json:"description"`
	Value       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
