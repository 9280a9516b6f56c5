package account

import (
	"context"

	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

type ProfileInput struct {
	AccountID uint
	Name      *string
	Password  *string
}

type UpdateProfile struct {
	repo salon.Repository
}

func NewUpdateProfile(repo salon.Repository) *UpdateProfile {
	return &UpdateProfile{repo: repo}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	in ProfileInput,
) (*models.Account, error) {

	acct, err := uc.repo.FindAccount(ctx, in.AccountID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		acct.Name = *in.Name
	}

	if in.Password != nil && *in.Password != "" {
		hash, err := domain.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		acct.PasswordHash = hash
	}

	if err := uc.repo.SaveAccount(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}
