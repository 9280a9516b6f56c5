package account

import (
	"context"
	"errors"
	"time"

	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
	"github.com/BruksfildServices01/salon-backend/internal/validators"
)

type Credentials struct {
	Email    string
	Password string
}

type Authenticate struct {
	repo salon.Repository
	now  func() time.Time
}

func NewAuthenticate(repo salon.Repository) *Authenticate {
	return &Authenticate{repo: repo, now: time.Now}
}

// Execute checks the credentials and records the login. Unknown emails,
// inactive accounts and wrong passwords all fail the same way.
func (uc *Authenticate) Execute(
	ctx context.Context,
	in Credentials,
) (*models.Account, error) {

	invalid := httperr.ErrBusiness(httperr.CodeInvalidCredentials)

	acct, err := uc.repo.FindAccountByEmail(ctx, validators.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, httperr.ErrNotFound) {
			return nil, invalid
		}
		return nil, err
	}

	if !acct.IsActive || !domain.CheckPassword(acct.PasswordHash, in.Password) {
		return nil, invalid
	}

	now := uc.now()
	acct.LastLogin = &now
	if err := uc.repo.SaveAccount(ctx, acct); err != nil {
		return nil, err
	}

	return acct, nil
}
