package models

import "time"

// Payment is a payment method (cash, card...), not a payment transaction.
type Payment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	FormatCode  string `gorm:"size:10;not null" json:"format_code"`
	Description string `gorm:"size:255;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
