package models

import "time"

// Promo is a weekly promotion; Weekday runs from 1 (Monday) to 7 (Sunday).
type Promo struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Weekday int    `gorm:"not null" json:"weekday"`
	Name    string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
