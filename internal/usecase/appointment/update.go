package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-backend/internal/audit"
	domain "github.com/BruksfildServices01/salon-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

type Update struct {
	repo salon.Repository
}

func NewUpdate(repo salon.Repository) *Update {
	return &Update{repo: repo}
}

// Execute overwrites the scalar fields present in p and replaces the
// reference of every child present in p.
func (uc *Update) Execute(
	ctx context.Context,
	actorID *uint,
	id uint,
	p domain.Patch,
) (*models.Appointment, error) {

	err := uc.repo.Transaction(ctx, func(tx salon.Repository) error {
		ap, err := tx.GetAppointment(ctx, id)
		if err != nil {
			return err
		}

		if err := domain.ApplyScalars(ap, p); err != nil {
			return err
		}
		if err := resolveChildren(ctx, tx, ap, p); err != nil {
			return err
		}

		if err := tx.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		return tx.Audit(ctx, audit.Event{
			AccountID: actorID,
			Action:    "appointment_updated",
			Entity:    "appointment",
			EntityID:  &ap.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.repo.GetAppointment(ctx, id)
}
