package technician

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/salon-backend/internal/domain/account"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
	usecase "github.com/BruksfildServices01/salon-backend/internal/usecase/account"
	"github.com/BruksfildServices01/salon-backend/internal/validators"
)

// profileFor returns the technician of the account with f's email,
// provisioning the account when the email is unknown and creating the
// profile when the account has none. existing reports whether the profile
// was already there.
func profileFor(
	ctx context.Context,
	repo salon.Repository,
	f salon.AccountFields,
) (tech *models.Technician, existing bool, err error) {

	acct, err := repo.FindAccountByEmail(ctx, validators.NormalizeEmail(f.Email))
	if errors.Is(err, httperr.ErrNotFound) {
		_, tech, err = usecase.Provision(ctx, repo, domain.NewAccount{
			Email:    f.Email,
			Password: f.Password,
			Name:     f.Name,
		})
		if err != nil {
			return nil, false, err
		}
		if tech == nil {
			return nil, false, fmt.Errorf("provisioned account %q has no technician profile", f.Email)
		}
		return tech, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	tech, err = repo.FindTechnicianByAccount(ctx, acct.ID)
	if err == nil {
		return tech, true, nil
	}
	if !errors.Is(err, httperr.ErrNotFound) {
		return nil, false, err
	}

	tech = &models.Technician{AccountID: acct.ID}
	if err := repo.CreateTechnician(ctx, tech); err != nil {
		return nil, false, err
	}
	return tech, false, nil
}

// attachSkills get-or-creates every skill and adds it to the technician.
func attachSkills(
	ctx context.Context,
	repo salon.Repository,
	technicianID uint,
	skills []salon.SkillFields,
) error {
	for _, f := range skills {
		skill, err := repo.GetOrCreateSkill(ctx, f)
		if err != nil {
			return err
		}
		if err := repo.AttachSkill(ctx, technicianID, skill.ID); err != nil {
			return err
		}
	}
	return nil
}

func attachBranches(
	ctx context.Context,
	repo salon.Repository,
	technicianID uint,
	branches []salon.BranchFields,
) error {
	for _, f := range branches {
		branch, err := repo.GetOrCreateBranch(ctx, f)
		if err != nil {
			return err
		}
		if err := repo.AttachBranch(ctx, technicianID, branch.ID); err != nil {
			return err
		}
	}
	return nil
}

// Resolve turns a technician embedded in another payload into a stored
// technician. An id must exist; an account reuses its profile when there
// is one. Listed skills and branches are added to the current ones.
func Resolve(
	ctx context.Context,
	repo salon.Repository,
	ref salon.TechnicianRef,
) (*models.Technician, error) {

	var tech *models.Technician
	switch {
	case ref.ID != nil:
		t, err := repo.GetTechnician(ctx, *ref.ID)
		if err != nil {
			return nil, err
		}
		tech = t
	case ref.Account != nil:
		t, _, err := profileFor(ctx, repo, *ref.Account)
		if err != nil {
			return nil, err
		}
		tech = t
	default:
		return nil, fmt.Errorf("technician: %w", httperr.ErrNotFound)
	}

	if ref.Skills != nil {
		if err := attachSkills(ctx, repo, tech.ID, *ref.Skills); err != nil {
			return nil, err
		}
	}
	if ref.Branches != nil {
		if err := attachBranches(ctx, repo, tech.ID, *ref.Branches); err != nil {
			return nil, err
		}
	}

	return tech, nil
}
