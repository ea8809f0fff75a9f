package who

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeInMonths_WholeMonths_DayIgnored(t *testing.T) {
	dob := date(2024, 1, 15)

	// Same month, earlier day: still 0 completed months by the calendar rule.
	got, err := AgeInMonths(dob, date(2024, 1, 31))
	if err != nil {
		t.Fatalf("AgeInMonths error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 months, got %d", got)
	}

	// Two calendar months later, day before the 15th: day of month is ignored.
	got, err = AgeInMonths(dob, date(2024, 3, 10))
	if err != nil {
		t.Fatalf("AgeInMonths error: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected 2 months, got %d", got)
	}

	// Year boundary.
	got, err = AgeInMonths(dob, date(2025, 1, 1))
	if err != nil {
		t.Fatalf("AgeInMonths error: %v", err)
	}
	if got != 12 {
		t.Fatalf("expected 12 months, got %d", got)
	}
}

func TestAgeInMonths_MonotonicInAsOf(t *testing.T) {
	dob := date(2023, 6, 10)

	prev := -1
	for i := 0; i < 36; i++ {
		asOf := dob.AddDate(0, i, 7)
		got, err := AgeInMonths(dob, asOf)
		if err != nil {
			t.Fatalf("AgeInMonths(%v) error: %v", asOf, err)
		}
		if got < prev {
			t.Fatalf("age went backwards: %d after %d at asOf=%v", got, prev, asOf)
		}
		prev = got
	}
}

func TestAgeInMonths_RejectsBeforeBirth(t *testing.T) {
	dob := date(2024, 5, 1)

	if _, err := AgeInMonths(dob, date(2024, 4, 30)); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestAgeInMonths_RejectsZeroDates(t *testing.T) {
	if _, err := AgeInMonths(time.Time{}, date(2024, 1, 1)); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate for zero dob, got %v", err)
	}
	if _, err := AgeInMonths(date(2024, 1, 1), time.Time{}); err != ErrInvalidDate {
		t.Fatalf("expected ErrInvalidDate for zero asOf, got %v", err)
	}
}
