package calendar

import "fmt"

// LunarNewYearCalculator computes the Gregorian-anchored date of Lunar New
// Year (month-1/day-1 of the Chinese lunisolar year). It has no cache; the
// table lookup is a bounded index operation and each call recomputes.
type LunarNewYearCalculator struct{}

// NewLunarNewYearCalculator returns a new calculator. The type is stateless;
// the constructor exists for symmetry with the other calculators.
func NewLunarNewYearCalculator() *LunarNewYearCalculator {
	return &LunarNewYearCalculator{}
}

// GetDate implements Calculator. Years outside the lunisolar data table
// (1901-2100) yield a nil Date and nil error. With a non-Gregorian sys the
// computed absolute date is decomposed into that system's own fields and
// the result carries that system's Kind; decomposition failures propagate
// (ErrUnsupportedCalendar or ErrConversion).
func (c *LunarNewYearCalculator) GetDate(year int, sys System) (*Date, error) {
	if year < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}

	t, ok := lunarNewYear(year)
	if !ok {
		return nil, nil
	}

	if sys == nil || sys.Kind() == Gregorian {
		d := gregorianDate(t)
		return &d, nil
	}

	y, m, day, err := sys.Fields(t)
	if err != nil {
		return nil, err
	}
	d := Date{Year: y, Month: m, Day: day, System: sys.Kind()}
	return &d, nil
}
