package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLunarNewYear_KnownDates(t *testing.T) {
	tests := []struct {
		year  int
		month int
		day   int
	}{
		{1901, 2, 19}, // first year of the data table
		{1950, 2, 17},
		{1976, 1, 31},
		{2000, 2, 5},
		{2020, 1, 25},
		{2022, 2, 1},
		{2023, 1, 22},
		{2024, 2, 10},
		{2025, 1, 29},
		{2033, 1, 31},
		{2100, 2, 9}, // last year of the data table
	}

	calc := NewLunarNewYearCalculator()
	for _, tt := range tests {
		d, err := calc.GetDate(tt.year, nil)
		require.NoError(t, err, "year %d", tt.year)
		require.NotNil(t, d, "year %d", tt.year)
		assert.Equal(t, Date{Year: tt.year, Month: tt.month, Day: tt.day, System: Gregorian}, *d)
	}
}

func TestLunarNewYear_OutsideTableIsNoResult(t *testing.T) {
	calc := NewLunarNewYearCalculator()

	for _, year := range []int{1900, 2101, 1, 9999} {
		d, err := calc.GetDate(year, nil)
		assert.NoError(t, err, "year %d", year)
		assert.Nil(t, d, "year %d: expected no result", year)
	}
}

func TestLunarNewYear_InvalidYear(t *testing.T) {
	calc := NewLunarNewYearCalculator()

	for _, year := range []int{0, -5} {
		d, err := calc.GetDate(year, nil)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, ErrInvalidYear, "year %d", year)
	}
}

func TestLunarNewYear_GregorianTargetUnchanged(t *testing.T) {
	calc := NewLunarNewYearCalculator()

	plain, err := calc.GetDate(2024, nil)
	require.NoError(t, err)
	explicit, err := calc.GetDate(2024, GregorianSystem{})
	require.NoError(t, err)

	assert.Equal(t, *plain, *explicit)
}

func TestLunarNewYear_JulianTarget(t *testing.T) {
	// February 10, 2024 (Gregorian) is January 28, 2024 on the Julian
	// calendar (13-day offset).
	calc := NewLunarNewYearCalculator()

	d, err := calc.GetDate(2024, JulianSystem{})
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, Date{Year: 2024, Month: 1, Day: 28, System: Julian}, *d)

	d, err = calc.GetDate(2023, JulianSystem{})
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, Date{Year: 2023, Month: 1, Day: 9, System: Julian}, *d)
}

func TestLunarNewYear_LunisolarTarget(t *testing.T) {
	// Decomposed into the lunisolar calendar itself, New Year is by
	// definition month 1, day 1.
	calc := NewLunarNewYearCalculator()

	d, err := calc.GetDate(2024, LunisolarSystem{})
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, Date{Year: 2024, Month: 1, Day: 1, System: ChineseLunisolar}, *d)
}
