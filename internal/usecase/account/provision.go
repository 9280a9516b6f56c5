package account

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// Provision creates a staff account and its technician profile with repo.
// Callers run it inside a transaction so both rows commit together.
func Provision(
	ctx context.Context,
	repo salon.Repository,
	in domain.NewAccount,
) (*models.Account, *models.Technician, error) {

	acct, err := domain.Build(in)
	if err != nil {
		return nil, nil, err
	}

	// --------------------------------------------------
	// Email uniqueness
	// --------------------------------------------------
	_, err = repo.FindAccountByEmail(ctx, acct.Email)
	switch {
	case err == nil:
		return nil, nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
	case !errors.Is(err, httperr.ErrNotFound):
		return nil, nil, err
	}

	if err := repo.CreateAccount(ctx, acct); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
		}
		return nil, nil, err
	}

	// --------------------------------------------------
	// Staff profile
	// --------------------------------------------------
	var tech *models.Technician
	if acct.IsStaff {
		tech = &models.Technician{AccountID: acct.ID}
		if err := repo.CreateTechnician(ctx, tech); err != nil {
			return nil, nil, err
		}
		tech.Account = *acct
	}

	return acct, tech, nil
}
