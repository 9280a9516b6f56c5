package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a billable salon service (haircut, coloring...).
type Service struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"size:100;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
