package account

import (
	"context"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAccount struct {
	repo salon.Repository
}

func NewCreateAccount(repo salon.Repository) *CreateAccount {
	return &CreateAccount{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAccount) Execute(
	ctx context.Context,
	in domain.NewAccount,
) (*models.Account, error) {

	var created *models.Account

	err := uc.repo.Transaction(ctx, func(tx salon.Repository) error {
		acct, tech, err := Provision(ctx, tx, in)
		if err != nil {
			return err
		}

		var techID *uint
		if tech != nil {
			techID = &tech.ID
		}

		created = acct
		return tx.Audit(ctx, audit.Event{
			AccountID: &acct.ID,
			Action:    "account_created",
			Entity:    "account",
			EntityID:  &acct.ID,
			Metadata:  map[string]any{"technician_id": techID},
		})
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
