package database

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	// Running again must apply nothing.
	applied, err := db.Migrate(ctx)
	if err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if applied != 0 {
		t.Errorf("second migrate applied %d migrations, want 0", applied)
	}
}

func TestUpsertAndGetNotableDate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	nd := &NotableDate{
		Event:     EventEasterSunday,
		Year:      2024,
		Calendar:  "gregorian",
		DateYear:  2024,
		DateMonth: 3,
		DateDay:   31,
	}
	if err := db.UpsertNotableDate(ctx, nd); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := db.GetNotableDate(ctx, EventEasterSunday, 2024, "gregorian")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DateYear != 2024 || got.DateMonth != 3 || got.DateDay != 31 {
		t.Errorf("got %d-%d-%d, want 2024-3-31", got.DateYear, got.DateMonth, got.DateDay)
	}
	if got.CreatedAt == nil {
		t.Error("CreatedAt not populated")
	}

	// Upserting the same key again must not create a second row.
	if err := db.UpsertNotableDate(ctx, nd); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	count, err := db.CountNotableDates(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestGetNotableDate_NotFound(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	_, err := db.GetNotableDate(ctx, EventLunarNewYear, 1999, "gregorian")
	if !IsNotFound(err) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListNotableDatesByYear(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	rows := []*NotableDate{
		{Event: EventEasterSunday, Year: 2024, Calendar: "gregorian", DateYear: 2024, DateMonth: 3, DateDay: 31},
		{Event: EventLunarNewYear, Year: 2024, Calendar: "gregorian", DateYear: 2024, DateMonth: 2, DateDay: 10},
		{Event: EventLunarNewYear, Year: 2024, Calendar: "julian", DateYear: 2024, DateMonth: 1, DateDay: 28},
		{Event: EventEasterSunday, Year: 2025, Calendar: "gregorian", DateYear: 2025, DateMonth: 4, DateDay: 20},
	}
	for _, nd := range rows {
		if err := db.UpsertNotableDate(ctx, nd); err != nil {
			t.Fatalf("upsert %v: %v", nd, err)
		}
	}

	got, err := db.ListNotableDatesByYear(ctx, 2024)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Ordered by event then calendar.
	if got[0].Event != EventEasterSunday {
		t.Errorf("first event = %q, want %q", got[0].Event, EventEasterSunday)
	}
	if got[1].Calendar != "gregorian" || got[2].Calendar != "julian" {
		t.Errorf("lunar-new-year rows out of order: %q, %q", got[1].Calendar, got[2].Calendar)
	}
}

func TestUpsertNotableDate_RejectsUnknownEvent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	nd := &NotableDate{
		Event:     "solstice",
		Year:      2024,
		Calendar:  "gregorian",
		DateYear:  2024,
		DateMonth: 6,
		DateDay:   20,
	}
	if err := db.UpsertNotableDate(ctx, nd); err == nil {
		t.Error("expected CHECK constraint failure for unknown event")
	}
}
