package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	domain "github.com/BruksfildServices01/salon-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
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
	in domain.Input,
) (*models.Appointment, error) {

	var id uint

	err := uc.repo.Transaction(ctx, func(tx salon.Repository) error {
		p := in.Patch()

		ap := &models.Appointment{}
		if err := domain.ApplyScalars(ap, p); err != nil {
			return err
		}

		// --------------------------------------------------
		// Children (get-or-create)
		// --------------------------------------------------
		if err := resolveChildren(ctx, tx, ap, p); err != nil {
			return err
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		id = ap.ID
		return tx.Audit(ctx, audit.Event{
			AccountID: actorID,
			Action:    "appointment_created",
			Entity:    "appointment",
			EntityID:  &ap.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.repo.GetAppointment(ctx, id)
}
