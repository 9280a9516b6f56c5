package repository

import (
	"context"

	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// --------------------------------------------------
// Accounts
// --------------------------------------------------

func (r *SalonGormRepository) FindAccount(
	ctx context.Context,
	id uint,
) (*models.Account, error) {

	var acct models.Account
	if err := r.db.WithContext(ctx).First(&acct, id).Error; err != nil {
		return nil, notFound(err, "account")
	}
	return &acct, nil
}

// FindAccountByEmail expects an already normalized email.
func (r *SalonGormRepository) FindAccountByEmail(
	ctx context.Context,
	email string,
) (*models.Account, error) {

	var acct models.Account
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&acct).Error; err != nil {
		return nil, notFound(err, "account")
	}
	return &acct, nil
}

func (r *SalonGormRepository) CreateAccount(
	ctx context.Context,
	a *models.Account,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *SalonGormRepository) SaveAccount(
	ctx context.Context,
	a *models.Account,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}
