package calendar

import (
	"errors"
	"time"
)

var (
	// ErrInvalidYear is returned when a calculator is asked for a year
	// before year 1.
	ErrInvalidYear = errors.New("year must be 1 or greater")

	// ErrUnsupportedCalendar is returned when a calendar system cannot be
	// used for the requested translation.
	ErrUnsupportedCalendar = errors.New("unsupported calendar")

	// ErrConversion is returned when a (year, month, day) triple is not a
	// valid date in the target calendar system, or lies outside its
	// supported range.
	ErrConversion = errors.New("calendar conversion failed")
)

// System converts between its own (year, month, day) fields and absolute
// dates. Absolute dates are represented as midnight-UTC time.Time values in
// the proleptic Gregorian calendar, which is what time.Time natively is.
//
// Implementations are stateless and safe for concurrent use. Calculators
// borrow a System per call and never retain it.
type System interface {
	// Kind identifies the system for cache keys and serialization.
	Kind() Kind

	// Date builds the absolute date for the given fields of this system.
	// Returns an error wrapping ErrConversion when the fields do not name
	// a valid date in this system or fall outside the supported range.
	Date(year, month, day, hour, min, sec, msec int) (time.Time, error)

	// Fields decomposes an absolute date into this system's own
	// (year, month, day) fields.
	Fields(t time.Time) (year, month, day int, err error)

	// MinSupported and MaxSupported bound the absolute dates this system
	// can represent.
	MinSupported() time.Time
	MaxSupported() time.Time
}

// SystemFor returns the built-in System for a Kind.
func SystemFor(k Kind) (System, error) {
	switch k {
	case Gregorian:
		return GregorianSystem{}, nil
	case Julian:
		return JulianSystem{}, nil
	case ChineseLunisolar:
		return LunisolarSystem{}, nil
	default:
		return nil, ErrUnsupportedCalendar
	}
}
