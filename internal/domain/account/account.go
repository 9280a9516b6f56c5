package account

import (
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
	"github.com/BruksfildServices01/salon-backend/internal/validators"
)

// NewAccount is the input of the provisioning rule.
type NewAccount struct {
	Email    string
	Password string
	Name     string
}

// Build validates the input and returns the staff account to persist.
// Email is required and normalized; the password is hashed.
func Build(in NewAccount) (*models.Account, error) {
	email := validators.NormalizeEmail(in.Email)
	if email == "" {
		return nil, httperr.ErrBusiness(httperr.CodeEmailRequired)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	return &models.Account{
		Email:        email,
		Name:         in.Name,
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      true,
	}, nil
}

// PromoteToSuperuser applies the elevated-account flags. Superusers are
// not flagged as staff.
func PromoteToSuperuser(a *models.Account) {
	a.IsStaff = false
	a.IsSuperuser = true
}
