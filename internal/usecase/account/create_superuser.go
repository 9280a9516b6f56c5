package account

import (
	"context"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

type CreateSuperuser struct {
	repo salon.Repository
}

func NewCreateSuperuser(repo salon.Repository) *CreateSuperuser {
	return &CreateSuperuser{repo: repo}
}

// Execute provisions the account like a regular signup, then flips it to
// superuser. The technician profile created by provisioning is kept.
func (uc *CreateSuperuser) Execute(
	ctx context.Context,
	in domain.NewAccount,
) (*models.Account, error) {

	var created *models.Account

	err := uc.repo.Transaction(ctx, func(tx salon.Repository) error {
		acct, _, err := Provision(ctx, tx, in)
		if err != nil {
			return err
		}

		domain.PromoteToSuperuser(acct)
		if err := tx.SaveAccount(ctx, acct); err != nil {
			return err
		}

		created = acct
		return tx.Audit(ctx, audit.Event{
			AccountID: &acct.ID,
			Action:    "superuser_created",
			Entity:    "account",
			EntityID:  &acct.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
