package calendar

import (
	"fmt"
	"sync"
)

// gregorianReformYear is the first year the Gregorian computus applies.
// Easter for earlier years is computed with the Julian algorithm, matching
// the historical adoption of the Gregorian calendar.
const gregorianReformYear = 1583

// easterKey keys the memoization cache. Results are never shared across
// calendar systems, since systems can disagree on the representation of the
// same triple.
type easterKey struct {
	year int
	kind Kind
}

// EasterCalculator computes the date of Easter Sunday with per-instance
// memoization. The zero value is not usable; construct with
// NewEasterCalculator. Safe for concurrent use.
type EasterCalculator struct {
	mu    sync.Mutex
	cache map[easterKey]Date

	// computed counts executions of the computus itself, not cache hits.
	// Read by tests through computeCount.
	computed int
}

// NewEasterCalculator returns a calculator with an empty cache. The cache is
// write-once per (year, calendar) key and is never evicted; it lives as long
// as the calculator instance.
func NewEasterCalculator() *EasterCalculator {
	return &EasterCalculator{cache: make(map[easterKey]Date)}
}

// GetDate implements Calculator. It returns the date of Easter Sunday for
// the given year, expressed as an absolute Gregorian-anchored date. A nil
// sys defaults to the Gregorian calendar. With a non-nil sys the computed
// (year, month, day) triple is interpreted as fields of that system at
// midnight; triples the system rejects surface as ErrConversion.
//
// Lookup-or-compute is atomic per key: concurrent callers for the same
// (year, calendar) observe exactly one computation.
func (c *EasterCalculator) GetDate(year int, sys System) (*Date, error) {
	if year < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}

	kind := Gregorian
	if sys != nil {
		kind = sys.Kind()
	}
	key := easterKey{year: year, kind: kind}

	c.mu.Lock()
	defer c.mu.Unlock()

	if d, ok := c.cache[key]; ok {
		return &d, nil
	}

	month, day := computus(year)
	c.computed++

	var d Date
	if sys == nil {
		d = Date{Year: year, Month: month, Day: day, System: Gregorian}
	} else {
		t, err := sys.Date(year, month, day, 0, 0, 0, 0)
		if err != nil {
			return nil, err
		}
		d = gregorianDate(t)
	}

	c.cache[key] = d
	return &d, nil
}

// computeCount reports how many times the computus has actually run.
func (c *EasterCalculator) computeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computed
}

// computus returns the month and day of Easter Sunday. Years at or after
// the Gregorian reform use the Meeus/Jones/Butcher algorithm; earlier years
// use the Julian algorithm, whose output is a Julian-calendar date.
func computus(year int) (month, day int) {
	if year >= gregorianReformYear {
		return gregorianComputus(year)
	}
	return julianComputus(year)
}

// gregorianComputus is the Meeus/Jones/Butcher algorithm. All divisions are
// integer divisions.
func gregorianComputus(year int) (month, day int) {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month = (h + l - 7*m + 114) / 31
	day = (h+l-7*m+114)%31 + 1
	return month, day
}

// julianComputus computes Easter on the Julian calendar.
func julianComputus(year int) (month, day int) {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	f := d + e + 114
	return f / 31, f%31 + 1
}
