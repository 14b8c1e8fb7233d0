package calendar

import (
	"fmt"
	"time"
)

// JulianSystem is the proleptic Julian calendar. Conversion goes through
// Julian Day Numbers using the Fliegel-Van Flandern style integer formulas;
// all divisions below are floor divisions on non-negative operands.
type JulianSystem struct{}

// Kind implements System.
func (JulianSystem) Kind() Kind { return Julian }

// julianToJDN converts a Julian-calendar (year, month, day) to a Julian Day
// Number.
func julianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - 32083
}

// jdnToJulian converts a Julian Day Number to Julian-calendar fields.
func jdnToJulian(jdn int) (year, month, day int) {
	c := jdn + 32082
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = d - 4800 + m/10
	return year, month, day
}

// gregorianToJDN converts a Gregorian (year, month, day) to a Julian Day
// Number.
func gregorianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian converts a Julian Day Number to Gregorian fields.
func jdnToGregorian(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153
	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// Date implements System: Julian fields in, absolute (Gregorian-anchored)
// date out. Invalid triples are caught by round-tripping through the JDN.
func (j JulianSystem) Date(year, month, day, hour, min, sec, msec int) (time.Time, error) {
	jdn := julianToJDN(year, month, day)
	ry, rm, rd := jdnToJulian(jdn)
	if ry != year || rm != month || rd != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d is not a valid Julian date", ErrConversion, year, month, day)
	}
	gy, gm, gd := jdnToGregorian(jdn)
	t := time.Date(gy, time.Month(gm), gd, hour, min, sec, msec*int(time.Millisecond), time.UTC)
	if t.Before(j.MinSupported()) || t.After(j.MaxSupported()) {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d outside supported Julian range", ErrConversion, year, month, day)
	}
	return t, nil
}

// Fields implements System.
func (j JulianSystem) Fields(t time.Time) (int, int, int, error) {
	if t.Before(j.MinSupported()) || t.After(j.MaxSupported()) {
		return 0, 0, 0, fmt.Errorf("%w: %s outside supported Julian range", ErrConversion, t.Format("2006-01-02"))
	}
	gy, gm, gd := t.UTC().Date()
	year, month, day := jdnToJulian(gregorianToJDN(gy, int(gm), gd))
	return year, month, day, nil
}

// MinSupported implements System. Julian year 1 begins two days before
// Gregorian year 1 does.
func (JulianSystem) MinSupported() time.Time {
	gy, gm, gd := jdnToGregorian(julianToJDN(1, 1, 1))
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC)
}

// MaxSupported implements System.
func (JulianSystem) MaxSupported() time.Time {
	gy, gm, gd := jdnToGregorian(julianToJDN(9999, 12, 31))
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, time.UTC)
}
