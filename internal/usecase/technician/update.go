package technician

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
	"github.com/BruksfildServices01/salon-backend/internal/validators"
)

type Update struct {
	repo salon.Repository
}

func NewUpdate(repo salon.Repository) *Update {
	return &Update{repo: repo}
}

// Execute applies p to technician id. The account is edited in place;
// present skill and branch lists replace the current memberships.
func (uc *Update) Execute(
	ctx context.Context,
	actorID *uint,
	id uint,
	p salon.TechnicianPatch,
) (*models.Technician, error) {

	err := uc.repo.Transaction(ctx, func(tx salon.Repository) error {
		tech, err := tx.GetTechnician(ctx, id)
		if err != nil {
			return err
		}

		if p.Account != nil {
			if err := updateAccount(ctx, tx, &tech.Account, *p.Account); err != nil {
				return err
			}
		}

		if p.Skills != nil {
			if err := tx.ClearSkills(ctx, tech.ID); err != nil {
				return err
			}
			if err := attachSkills(ctx, tx, tech.ID, *p.Skills); err != nil {
				return err
			}
		}

		if p.Branches != nil {
			if err := tx.ClearBranches(ctx, tech.ID); err != nil {
				return err
			}
			if err := attachBranches(ctx, tx, tech.ID, *p.Branches); err != nil {
				return err
			}
		}

		return tx.Audit(ctx, audit.Event{
			AccountID: actorID,
			Action:    "technician_updated",
			Entity:    "technician",
			EntityID:  &tech.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.repo.GetTechnician(ctx, id)
}

func updateAccount(
	ctx context.Context,
	repo salon.Repository,
	acct *models.Account,
	p salon.AccountPatch,
) error {

	if p.Email != nil {
		email := validators.NormalizeEmail(*p.Email)
		if email == "" {
			return httperr.ErrBusiness(httperr.CodeEmailRequired)
		}

		if email != acct.Email {
			other, err := repo.FindAccountByEmail(ctx, email)
			switch {
			case err == nil && other.ID != acct.ID:
				return httperr.ErrBusiness(httperr.CodeEmailTaken)
			case err != nil && !errors.Is(err, httperr.ErrNotFound):
				return err
			}
			acct.Email = email
		}
	}

	if p.Name != nil {
		acct.Name = *p.Name
	}

	if p.Password != nil && *p.Password != "" {
		hash, err := domain.HashPassword(*p.Password)
		if err != nil {
			return err
		}
		acct.PasswordHash = hash
	}

	if err := repo.SaveAccount(ctx, acct); err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
		return err
	}
	return nil
}
