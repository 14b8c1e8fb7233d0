package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a requested record doesn't exist
	ErrNotFound = errors.New("not found")
)

// IsNotFound checks if an error is a not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, ns.String)
	if err == nil {
		return &t
	}

	t, err = time.Parse("2006-01-02 15:04:05", ns.String)
	if err == nil {
		return &t
	}

	return nil
}

// UpsertNotableDate inserts or replaces the row for (event, year, calendar).
// Precomputation is deterministic, so replacing an existing row always
// writes the same value back.
func (db *DB) UpsertNotableDate(ctx context.Context, nd *NotableDate) error {
	query := `
		INSERT INTO notable_dates (event, year, calendar, date_year, date_month, date_day)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (event, year, calendar) DO UPDATE SET
			date_year = excluded.date_year,
			date_month = excluded.date_month,
			date_day = excluded.date_day,
			updated_at = datetime('now')
	`

	_, err := db.ExecContext(ctx, query,
		nd.Event, nd.Year, nd.Calendar, nd.DateYear, nd.DateMonth, nd.DateDay)
	if err != nil {
		return fmt.Errorf("upsert notable date: %w", err)
	}
	return nil
}

// GetNotableDate retrieves a single precomputed row.
// Returns ErrNotFound when the (event, year, calendar) triple is absent.
func (db *DB) GetNotableDate(ctx context.Context, event string, year int, calendar string) (*NotableDate, error) {
	query := `
		SELECT id, event, year, calendar, date_year, date_month, date_day,
		       created_at, updated_at
		FROM notable_dates
		WHERE event = ? AND year = ? AND calendar = ?
	`

	var nd NotableDate
	var createdAt, updatedAt sql.NullString
	err := db.QueryRowContext(ctx, query, event, year, calendar).Scan(
		&nd.ID, &nd.Event, &nd.Year, &nd.Calendar,
		&nd.DateYear, &nd.DateMonth, &nd.DateDay,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get notable date: %w", err)
	}

	nd.CreatedAt = parseTimestamp(createdAt)
	nd.UpdatedAt = parseTimestamp(updatedAt)
	return &nd, nil
}

// ListNotableDatesByYear returns all precomputed rows for a calendar year,
// ordered by event then calendar for stable output.
func (db *DB) ListNotableDatesByYear(ctx context.Context, year int) ([]NotableDate, error) {
	query := `
		SELECT id, event, year, calendar, date_year, date_month, date_day,
		       created_at, updated_at
		FROM notable_dates
		WHERE year = ?
		ORDER BY event, calendar
	`

	rows, err := db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("list notable dates: %w", err)
	}
	defer rows.Close()

	var dates []NotableDate
	for rows.Next() {
		var nd NotableDate
		var createdAt, updatedAt sql.NullString
		if err := rows.Scan(
			&nd.ID, &nd.Event, &nd.Year, &nd.Calendar,
			&nd.DateYear, &nd.DateMonth, &nd.DateDay,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notable date: %w", err)
		}
		nd.CreatedAt = parseTimestamp(createdAt)
		nd.UpdatedAt = parseTimestamp(updatedAt)
		dates = append(dates, nd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notable dates: %w", err)
	}

	return dates, nil
}

// CountNotableDates returns the total number of precomputed rows.
func (db *DB) CountNotableDates(ctx context.Context) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM notable_dates").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notable dates: %w", err)
	}
	return count, nil
}
