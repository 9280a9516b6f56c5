package appointment

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// ApplyScalars copies the non-relational fields present in p onto ap.
// Children are resolved by the use case.
func ApplyScalars(ap *models.Appointment, p Patch) error {
	if p.Date != nil {
		d, err := salon.ParseDate(*p.Date)
		if err != nil {
			return err
		}
		ap.Date = d
	}

	if p.Time != nil {
		t, err := salon.ParseClock(*p.Time)
		if err != nil {
			return err
		}
		ap.Time = t
	}

	if p.Warranty != nil {
		ap.Warranty = *p.Warranty
	}

	setAmount(&ap.Commission, p.Commission)
	setAmount(&ap.Tip, p.Tip)
	setAmount(&ap.Courtesy, p.Courtesy)
	setAmount(&ap.DiscountPrice, p.DiscountPrice)
	setAmount(&ap.FinalIncome, p.FinalIncome)
	return nil
}

func setAmount(dst *decimal.Decimal, v *decimal.Decimal) {
	if v != nil {
		*dst = *v
	}
}
