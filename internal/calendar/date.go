// Package calendar computes notable dates (Easter Sunday, Lunar New Year)
// and translates them between calendar systems.
package calendar

import (
	"fmt"
	"time"
)

// Kind identifies a supported calendar system. It doubles as the cache key
// component that keeps memoized results separate per system.
type Kind int

const (
	Gregorian Kind = iota
	Julian
	ChineseLunisolar
)

// String returns the lowercase name used in URLs and database rows.
func (k Kind) String() string {
	switch k {
	case Gregorian:
		return "gregorian"
	case Julian:
		return "julian"
	case ChineseLunisolar:
		return "chinese-lunisolar"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a name produced by Kind.String back to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "gregorian":
		return Gregorian, nil
	case "julian":
		return Julian, nil
	case "chinese-lunisolar":
		return ChineseLunisolar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCalendar, s)
	}
}

// Date is a calendar date with no time-of-day and no timezone attached.
// Month and Day are expressed in the fields of System; a lunisolar date may
// therefore carry Month 13 in a leap year. Downstream consumers must not
// apply timezone conversion to it.
type Date struct {
	Year   int  `json:"year"`
	Month  int  `json:"month"`
	Day    int  `json:"day"`
	System Kind `json:"calendar"`
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight UTC on the date. Only meaningful for Gregorian
// dates; it exists for interop with code that works in time.Time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// gregorianDate builds a Gregorian Date from an absolute time.
func gregorianDate(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: int(m), Day: d, System: Gregorian}
}
