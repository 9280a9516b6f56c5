package models

import (
	"time"

	"gorm.io/datatypes"
)

// Client is a salon customer; clients never log in.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string         `gorm:"size:100;not null" json:"name"`
	LastName string         `gorm:"size:100;not null" json:"last_name"`
	Phone    string         `gorm:"size:15;not null" json:"phone"`
	Email    string         `gorm:"size:254;not null" json:"email"`
	Birthday datatypes.Date `gorm:"not null" json:"birthday"`
	Comments string         `gorm:"type:text;not null" json:"comments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
