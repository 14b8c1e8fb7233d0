package calendar

import (
	"fmt"
	"time"
)

// GregorianSystem is the proleptic Gregorian calendar, the identity system:
// its fields are the fields of time.Time itself.
type GregorianSystem struct{}

// Kind implements System.
func (GregorianSystem) Kind() Kind { return Gregorian }

// Date implements System. time.Date silently normalizes out-of-range fields
// (month 13 becomes January of the next year), so the result is decomposed
// and compared against the input to reject invalid triples instead.
func (g GregorianSystem) Date(year, month, day, hour, min, sec, msec int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, hour, min, sec, msec*int(time.Millisecond), time.UTC)
	y, m, d := t.Date()
	if y != year || int(m) != month || d != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d is not a valid Gregorian date", ErrConversion, year, month, day)
	}
	if t.Before(g.MinSupported()) || t.After(g.MaxSupported()) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d outside supported Gregorian range", ErrConversion, year, month, day)
	}
	return t, nil
}

// Fields implements System.
func (g GregorianSystem) Fields(t time.Time) (int, int, int, error) {
	if t.Before(g.MinSupported()) || t.After(g.MaxSupported()) {
		return 0, 0, 0, fmt.Errorf("%w: %s outside supported Gregorian range", ErrConversion, t.Format("2006-01-02"))
	}
	y, m, d := t.UTC().Date()
	return y, int(m), d, nil
}

// MinSupported implements System.
func (GregorianSystem) MinSupported() time.Time {
	return time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// MaxSupported implements System.
func (GregorianSystem) MaxSupported() time.Time {
	return time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
}
