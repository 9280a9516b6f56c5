package technician

import (
	"context"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/httperr"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo salon.Repository
}

func NewCreate(repo salon.Repository) *Create {
	return &Create{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	actorID *uint,
	in salon.TechnicianInput,
) (*models.Technician, error) {

	var id uint

	err := uc.repo.Transaction(ctx, func(tx salon.Repository) error {
		// --------------------------------------------------
		// Account + profile
		// --------------------------------------------------
		tech, existing, err := profileFor(ctx, tx, *in.Account)
		if err != nil {
			return err
		}
		if existing {
			return httperr.ErrBusiness(httperr.CodeTechnicianExists)
		}

		// --------------------------------------------------
		// Memberships
		// --------------------------------------------------
		if in.Skills != nil {
			if err := attachSkills(ctx, tx, tech.ID, *in.Skills); err != nil {
				return err
			}
		}
		if in.Branches != nil {
			if err := attachBranches(ctx, tx, tech.ID, *in.Branches); err != nil {
				return err
			}
		}

		id = tech.ID
		return tx.Audit(ctx, audit.Event{
			AccountID: actorID,
			Action:    "technician_created",
			Entity:    "technician",
			EntityID:  &tech.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.repo.GetTechnician(ctx, id)
}
