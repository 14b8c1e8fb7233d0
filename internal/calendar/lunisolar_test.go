package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLunisolar_TableAnchors(t *testing.T) {
	// Spot checks against well-known festival dates.
	sys := LunisolarSystem{}

	// Lantern Festival 2024: lunar 1-15 fell on February 24.
	abs, err := sys.Date(2024, 1, 15, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.February, 24), abs)

	// Mid-Autumn Festival 2024: lunar 8-15 fell on September 17.
	abs, err = sys.Date(2024, 8, 15, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.September, 17), abs)
}

func TestLunisolar_Fields(t *testing.T) {
	sys := LunisolarSystem{}

	y, m, d, err := sys.Fields(date(2024, time.February, 10))
	require.NoError(t, err)
	assert.Equal(t, [3]int{2024, 1, 1}, [3]int{y, m, d})

	// The day before New Year 2024 is the last day of lunisolar 2023,
	// which has 13 months (leap month after month 2).
	y, m, d, err = sys.Fields(date(2024, time.February, 9))
	require.NoError(t, err)
	assert.Equal(t, 2023, y)
	assert.Equal(t, 13, m)

	// The epoch day of the supported range.
	y, m, d, err = sys.Fields(sys.MinSupported())
	require.NoError(t, err)
	assert.Equal(t, [3]int{1901, 1, 1}, [3]int{y, m, d})
}

func TestLunisolar_LeapMonthNumbering(t *testing.T) {
	// 2023 has a leap second month: display months run 1, 2, 3(=leap 2),
	// 4(=regular 3), ... 13(=regular 12).
	assert.Equal(t, 2, lunarLeapMonth(2023))
	assert.Equal(t, 13, monthsInLunarYear(2023))
	assert.Equal(t, 12, monthsInLunarYear(2024))

	// Round-trip a date inside the leap month.
	sys := LunisolarSystem{}
	abs, err := sys.Date(2023, 3, 10, 0, 0, 0, 0)
	require.NoError(t, err)

	y, m, d, err := sys.Fields(abs)
	require.NoError(t, err)
	assert.Equal(t, [3]int{2023, 3, 10}, [3]int{y, m, d})
}

func TestLunisolar_RoundTripAllNewYears(t *testing.T) {
	sys := LunisolarSystem{}

	for year := MinLunisolarYear; year <= MaxLunisolarYear; year++ {
		abs, ok := lunarNewYear(year)
		require.True(t, ok, "year %d", year)

		y, m, d, err := sys.Fields(abs)
		require.NoError(t, err, "year %d", year)
		assert.Equal(t, [3]int{year, 1, 1}, [3]int{y, m, d}, "year %d", year)
	}
}

func TestLunisolar_RejectsOutOfRange(t *testing.T) {
	sys := LunisolarSystem{}

	_, err := sys.Date(1900, 1, 1, 0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrConversion)
	_, err = sys.Date(2101, 1, 1, 0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrConversion)
	_, err = sys.Date(2024, 13, 1, 0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrConversion)
	_, err = sys.Date(2024, 1, 30, 0, 0, 0, 0) // month 1 of 2024 has 29 days
	assert.ErrorIs(t, err, ErrConversion)

	_, _, _, err = sys.Fields(date(1900, time.June, 1))
	assert.ErrorIs(t, err, ErrConversion)
	_, _, _, err = sys.Fields(date(2101, time.June, 1))
	assert.ErrorIs(t, err, ErrConversion)
}

func TestLunisolar_SupportedRange(t *testing.T) {
	sys := LunisolarSystem{}

	assert.Equal(t, date(1901, time.February, 19), sys.MinSupported())
	// Lunisolar 2100 ends on January 28, 2101.
	assert.Equal(t, date(2101, time.January, 28), sys.MaxSupported())
}
