// Command dategen precomputes notable-date tables for a range of years and
// stores them in the SQLite database the API serves from.
//
// Usage:
//
//	dategen -db ./data/notable-dates.db -start 2020 -end 2030
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/awrigley/notable-dates-api/internal/calendar"
	"github.com/awrigley/notable-dates-api/internal/database"
)

func main() {
	dbPath := flag.String("db", "./data/notable-dates.db", "Path to SQLite database")
	start := flag.Int("start", 2020, "First year to generate")
	end := flag.Int("end", 2030, "Last year to generate (inclusive)")
	flag.Parse()

	if *start < 1 || *end < *start {
		fmt.Fprintf(os.Stderr, "invalid year range %d-%d\n", *start, *end)
		os.Exit(2)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	db, err := database.Open(database.DefaultConfig(*dbPath), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}

	calculators := map[string]calendar.Calculator{
		database.EventEasterSunday: calendar.NewEasterCalculator(),
		database.EventLunarNewYear: calendar.NewLunarNewYearCalculator(),
	}
	kinds := []calendar.Kind{calendar.Gregorian, calendar.Julian, calendar.ChineseLunisolar}

	fmt.Printf("=== Notable date tables for %d-%d ===\n\n", *start, *end)

	stored, skipped := 0, 0
	for year := *start; year <= *end; year++ {
		for _, event := range database.ValidEvents() {
			for _, kind := range kinds {
				sys, err := calendar.SystemFor(kind)
				if err != nil {
					fmt.Fprintf(os.Stderr, "system %s: %v\n", kind, err)
					os.Exit(1)
				}

				d, err := calculators[event].GetDate(year, sys)
				if err != nil {
					// Combinations a calendar cannot represent are
					// expected; anything else is fatal.
					if errors.Is(err, calendar.ErrConversion) || errors.Is(err, calendar.ErrUnsupportedCalendar) {
						skipped++
						continue
					}
					fmt.Fprintf(os.Stderr, "%s %d (%s): %v\n", event, year, kind, err)
					os.Exit(1)
				}
				if d == nil {
					skipped++
					continue
				}

				nd := &database.NotableDate{
					Event:     event,
					Year:      year,
					Calendar:  kind.String(),
					DateYear:  d.Year,
					DateMonth: d.Month,
					DateDay:   d.Day,
				}
				if err := db.UpsertNotableDate(ctx, nd); err != nil {
					fmt.Fprintf(os.Stderr, "store %s %d (%s): %v\n", event, year, kind, err)
					os.Exit(1)
				}
				stored++

				if kind == calendar.Gregorian {
					fmt.Printf("  %-16s %d  %s\n", event, year, d)
				}
			}
		}
	}

	fmt.Printf("\nStored %d rows (%d combinations skipped)\n", stored, skipped)
}
