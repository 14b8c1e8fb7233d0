package calendar

// Calculator is the common contract of all notable-date calculators.
//
// GetDate computes the date of the calculator's event for a calendar year,
// expressed in the given system; a nil sys defaults to Gregorian. A nil
// Date with a nil error means the year is outside the calculator's
// supported range — absence of a result, not a failure. Callers must treat
// the two distinctly.
//
// Implementations are safe for concurrent use and are referentially
// transparent for a given (year, system) pair.
type Calculator interface {
	GetDate(year int, sys System) (*Date, error)
}

// Compile-time interface checks.
var (
	_ Calculator = (*EasterCalculator)(nil)
	_ Calculator = (*LunarNewYearCalculator)(nil)
)
