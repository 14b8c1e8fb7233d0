package database

import "time"

// Event names stored in the notable_dates table. They match the event
// segment of the API routes.
const (
	EventEasterSunday = "easter-sunday"
	EventLunarNewYear = "lunar-new-year"
)

// ValidEvents returns all event names the service computes.
func ValidEvents() []string {
	return []string{EventEasterSunday, EventLunarNewYear}
}

// IsValidEvent checks whether an event name is known.
func IsValidEvent(event string) bool {
	for _, e := range ValidEvents() {
		if e == event {
			return true
		}
	}
	return false
}

// NotableDate is one precomputed row of a notable-date table: the date of
// an event for a calendar year, as computed for one target calendar system.
// The date fields are whatever the calculator returned for that target and
// carry no timezone.
type NotableDate struct {
	ID        int64      `json:"id"`
	Event     string     `json:"event"`
	Year      int        `json:"year"`     // requested calendar year
	Calendar  string     `json:"calendar"` // gregorian, julian, chinese-lunisolar
	DateYear  int        `json:"date_year"`
	DateMonth int        `json:"date_month"`
	DateDay   int        `json:"date_day"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
