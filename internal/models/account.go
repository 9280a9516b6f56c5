package models

import "time"

// Account is a platform login. Staff accounts own exactly one Technician.
type Account struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name         string `gorm:"size:255;not null;default:''" json:"name"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	IsActive    bool `gorm:"not null;default:true" json:"is_active"`
	IsStaff     bool `gorm:"not null;default:false" json:"is_staff"`
	IsSuperuser bool `gorm:"not null;default:false" json:"is_superuser"`

	LastLogin *time.Time `json:"last_login"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
