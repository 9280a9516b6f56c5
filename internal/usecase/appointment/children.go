package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-backend/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
	"github.com/BruksfildServices01/salon-backend/internal/usecase/technician"
)

// resolveChildren get-or-creates every child present in p and points ap at
// it. Absent children keep their current reference.
func resolveChildren(
	ctx context.Context,
	repo salon.Repository,
	ap *models.Appointment,
	p domain.Patch,
) error {

	if p.Branch != nil {
		b, err := repo.GetOrCreateBranch(ctx, *p.Branch)
		if err != nil {
			return err
		}
		ap.BranchID = b.ID
	}

	if p.Client != nil {
		c, err := repo.GetOrCreateClient(ctx, *p.Client)
		if err != nil {
			return err
		}
		ap.ClientID = c.ID
	}

	if p.Technician != nil {
		t, err := technician.Resolve(ctx, repo, *p.Technician)
		if err != nil {
			return err
		}
		ap.TechnicianID = t.ID
	}

	if p.Service != nil {
		s, err := repo.GetOrCreateService(ctx, *p.Service)
		if err != nil {
			return err
		}
		ap.ServiceID = s.ID
	}

	if p.Payment != nil {
		pm, err := repo.GetOrCreatePayment(ctx, *p.Payment)
		if err != nil {
			return err
		}
		ap.PaymentID = &pm.ID
	}

	if p.Discount != nil {
		d, err := repo.GetOrCreateDiscount(ctx, *p.Discount)
		if err != nil {
			return err
		}
		ap.DiscountID = &d.ID
	}

	return nil
}
