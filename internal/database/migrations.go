package database

// migrationsSQL contains all database migrations, applied in order by
// version number. Each migration is idempotent.
var migrationsSQL = map[int]string{
	1: migrationV1NotableDates,
}

// migrationV1NotableDates creates the notable_dates table.
//
// One row per (event, year, calendar): the date of a notable event for a
// calendar year, expressed in one calendar system. The date is stored as
// separate year/month/day columns rather than a TEXT date because
// non-Gregorian fields (a lunisolar month 13, say) are not a date SQLite
// functions should ever interpret.
const migrationV1NotableDates = `
CREATE TABLE IF NOT EXISTS notable_dates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    event TEXT NOT NULL CHECK (event IN (
        'easter-sunday',
        'lunar-new-year'
    )),

    -- The requested calendar year and the calendar system the date fields
    -- are expressed in.
    year INTEGER NOT NULL CHECK (year >= 1),
    calendar TEXT NOT NULL CHECK (calendar IN (
        'gregorian',
        'julian',
        'chinese-lunisolar'
    )),

    date_year INTEGER NOT NULL,
    date_month INTEGER NOT NULL,
    date_day INTEGER NOT NULL,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (event, year, calendar)
);

CREATE INDEX IF NOT EXISTS idx_notable_dates_year
    ON notable_dates(year);
`
