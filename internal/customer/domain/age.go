package domain

import "time"

// FullLegalAgeYears is the age a customer must have exceeded to sign up.
const FullLegalAgeYears = 18

// FullLegalAge is a birth date known to lie strictly more than
// FullLegalAgeYears before the time it was validated at.
type FullLegalAge struct {
	birthDate time.Time
}

// NewFullLegalAge validates birthDate against now. Only calendar dates are
// compared; the time of day of either argument is ignored.
//
// The rule is "older than 18 years": a birth date exactly 18 years before now
// is rejected.
func NewFullLegalAge(birthDate, now time.Time) (FullLegalAge, error) {
	threshold := yearsBefore(civilDate(now), FullLegalAgeYears)
	if !civilDate(birthDate).Before(threshold) {
		return FullLegalAge{}, ErrInvalidBirthDate
	}
	return FullLegalAge{birthDate: birthDate}, nil
}

// MustFullLegalAge creates a FullLegalAge, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustFullLegalAge(birthDate, now time.Time) FullLegalAge {
	a, err := NewFullLegalAge(birthDate, now)
	if err != nil {
		panic(err)
	}
	return a
}

// BirthDate returns the validated birth date unchanged.
func (a FullLegalAge) BirthDate() time.Time {
	return a.birthDate
}

// IsZero returns true if this is the zero value (uninitialized).
func (a FullLegalAge) IsZero() bool {
	return a.birthDate.IsZero()
}

// civilDate drops the clock part of t, keeping its calendar date in t's location.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// yearsBefore subtracts years from a calendar date, clamping Feb 29 to Feb 28
// instead of rolling over into March.
func yearsBefore(date time.Time, years int) time.Time {
	y, m, d := date.Date()
	target := y - years
	if last := daysIn(m, target); d > last {
		d = last
	}
	return time.Date(target, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
