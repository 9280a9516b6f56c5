package dto

import (
	"time"

	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// AccountDTO never carries the password hash.
type AccountDTO struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	IsActive    bool       `json:"is_active"`
	IsStaff     bool       `json:"is_staff"`
	IsSuperuser bool       `json:"is_superuser"`
	LastLogin   *time.Time `json:"last_login"`
}

func Account(a *models.Account) AccountDTO {
	return AccountDTO{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		IsActive:    a.IsActive,
		IsStaff:     a.IsStaff,
		IsSuperuser: a.IsSuperuser,
		LastLogin:   a.LastLogin,
	}
}

type TokenDTO struct {
	Token string `json:"token"`
}
