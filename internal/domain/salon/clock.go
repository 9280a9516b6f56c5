package salon

import (
	"time"

	"gorm.io/datatypes"

	"github.com/BruksfildServices01/salon-backend/internal/httperr"
)

const dateLayout = "2006-01-02"

func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	return datatypes.Date(t), nil
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

// ParseClock accepts "15:04:05" and "15:04".
func ParseClock(s string) (datatypes.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
		}
	}
	return 0, httperr.ErrBusiness(httperr.CodeInvalidTime)
}

func optionalClock(s *string) (*datatypes.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := ParseClock(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatOptionalClock(t *datatypes.Time) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
