package who

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

// AgeInMonths returns the whole-month difference between dob and asOf.
// Day of month is ignored on purpose: WHO reference tables bucket by
// completed calendar months, not elapsed days.
// Future-date and 100-year-cap policy lives at the ingestion boundary
// (children/growth services), not here.
func AgeInMonths(dob, asOf time.Time) (int, error) {
	if dob.IsZero() || asOf.IsZero() {
		return 0, ErrInvalidDate
	}
	if asOf.Before(dob) {
		return 0, ErrInvalidDate
	}

	months := (asOf.Year()-dob.Year())*12 + int(asOf.Month()) - int(dob.Month())
	if months < 0 {
		return 0, ErrInvalidDate
	}
	return months, nil
}
