package calendar

import (
	"fmt"
	"time"
)

// Supported year range of the lunisolar data table.
const (
	MinLunisolarYear = 1901
	MaxLunisolarYear = 2100
)

// lunarYearInfo encodes one Chinese lunisolar year per entry, for the years
// 1900 through 2100. The encoding is the widely used compact form:
//
//	bits 15..4  month lengths for months 1-12 (set = 30 days, clear = 29)
//	bits 3..0   number of the leap month, 0 when the year has none
//	bit  16     the leap month has 30 days when set, 29 otherwise
//
// The table anchors at lunar 1900-01-01 = January 31, 1900 (Gregorian).
// Entry 1900 exists only to anchor the arithmetic; the supported range
// starts at 1901.
var lunarYearInfo = [...]uint32{
	0x04bd8, 0x04ae0, 0x0a570, 0x054d5, 0x0d260, 0x0d950, 0x16554, 0x056a0, 0x09ad0, 0x055d2, // 1900-1909
	0x04ae0, 0x0a5b6, 0x0a4d0, 0x0d250, 0x1d255, 0x0b540, 0x0d6a0, 0x0ada2, 0x095b0, 0x14977, // 1910-1919
	0x04970, 0x0a4b0, 0x0b4b5, 0x06a50, 0x06d40, 0x1ab54, 0x02b60, 0x09570, 0x052f2, 0x04970, // 1920-1929
	0x06566, 0x0d4a0, 0x0ea50, 0x06e95, 0x05ad0, 0x02b60, 0x186e3, 0x092e0, 0x1c8d7, 0x0c950, // 1930-1939
	0x0d4a0, 0x1d8a6, 0x0b550, 0x056a0, 0x1a5b4, 0x025d0, 0x092d0, 0x0d2b2, 0x0a950, 0x0b557, // 1940-1949
	0x06ca0, 0x0b550, 0x15355, 0x04da0, 0x0a5b0, 0x14573, 0x052b0, 0x0a9a8, 0x0e950, 0x06aa0, // 1950-1959
	0x0aea6, 0x0ab50, 0x04b60, 0x0aae4, 0x0a570, 0x05260, 0x0f263, 0x0d950, 0x05b57, 0x056a0, // 1960-1969
	0x096d0, 0x04dd5, 0x04ad0, 0x0a4d0, 0x0d4d4, 0x0d250, 0x0d558, 0x0b540, 0x0b5a0, 0x195a6, // 1970-1979
	0x095b0, 0x049b0, 0x0a974, 0x0a4b0, 0x0b27a, 0x06a50, 0x06d40, 0x0af46, 0x0ab60, 0x09570, // 1980-1989
	0x04af5, 0x04970, 0x064b0, 0x074a3, 0x0ea50, 0x06b58, 0x05ac0, 0x0ab60, 0x096d5, 0x092e0, // 1990-1999
	0x0c960, 0x0d954, 0x0d4a0, 0x0da50, 0x07552, 0x056a0, 0x0abb7, 0x025d0, 0x092d0, 0x0cab5, // 2000-2009
	0x0a950, 0x0b4a0, 0x0baa4, 0x0ad50, 0x055d9, 0x04ba0, 0x0a5b0, 0x15176, 0x052b0, 0x0a930, // 2010-2019
	0x07954, 0x06aa0, 0x0ad50, 0x05b52, 0x04b60, 0x0a6e6, 0x0a4e0, 0x0d260, 0x0ea65, 0x0d530, // 2020-2029
	0x05aa0, 0x076a3, 0x096d0, 0x04afb, 0x04ad0, 0x0a4d0, 0x1d0b6, 0x0d250, 0x0d520, 0x0dd45, // 2030-2039
	0x0b5a0, 0x056d0, 0x055b2, 0x049b0, 0x0a577, 0x0a4b0, 0x0aa50, 0x1b255, 0x06d20, 0x0ada0, // 2040-2049
	0x14b63, 0x09370, 0x049f8, 0x04970, 0x064b0, 0x168a6, 0x0ea50, 0x06b20, 0x1a6c4, 0x0aae0, // 2050-2059
	0x0a2e0, 0x0d2e3, 0x0c960, 0x0d557, 0x0d4a0, 0x0da50, 0x05d55, 0x056a0, 0x0a6d0, 0x055d4, // 2060-2069
	0x052d0, 0x0a9b8, 0x0a950, 0x0b4a0, 0x0b6a6, 0x0ad50, 0x055a0, 0x0aba4, 0x0a5b0, 0x052b0, // 2070-2079
	0x0b273, 0x06930, 0x07337, 0x06aa0, 0x0ad50, 0x14b55, 0x04b60, 0x0a570, 0x054e4, 0x0d160, // 2080-2089
	0x0e968, 0x0d520, 0x0daa0, 0x16aa6, 0x056d0, 0x04ae0, 0x0a9d4, 0x0a2d0, 0x0d150, 0x0f252, // 2090-2099
	0x0d520, // 2100
}

// lunarEpoch is the absolute date of lunar 1900-01-01.
var lunarEpoch = time.Date(1900, time.January, 31, 0, 0, 0, 0, time.UTC)

func lunarInfo(year int) uint32 { return lunarYearInfo[year-1900] }

// lunarLeapMonth returns the leap month of a lunisolar year, 0 if none.
func lunarLeapMonth(year int) int { return int(lunarInfo(year) & 0xF) }

// lunarLeapDays returns the length of the leap month, 0 if the year has none.
func lunarLeapDays(year int) int {
	if lunarLeapMonth(year) == 0 {
		return 0
	}
	if lunarInfo(year)&0x10000 != 0 {
		return 30
	}
	return 29
}

// lunarMonthDays returns the length of a regular month (1-12).
func lunarMonthDays(year, month int) int {
	if lunarInfo(year)&(0x8000>>(month-1)) != 0 {
		return 30
	}
	return 29
}

// lunarYearDays returns the total number of days in a lunisolar year.
func lunarYearDays(year int) int {
	days := 0
	for month := 1; month <= 12; month++ {
		days += lunarMonthDays(year, month)
	}
	return days + lunarLeapDays(year)
}

// newYearOffsets[i] is the number of days from lunarEpoch to the first day
// of lunisolar year 1900+i.
var newYearOffsets = buildNewYearOffsets()

func buildNewYearOffsets() [len(lunarYearInfo) + 1]int {
	var offsets [len(lunarYearInfo) + 1]int
	for i := range lunarYearInfo {
		offsets[i+1] = offsets[i] + lunarYearDays(1900+i)
	}
	return offsets
}

// lunarNewYear returns the absolute date of month-1/day-1 of a lunisolar
// year. ok is false when the year is outside the data table.
func lunarNewYear(year int) (time.Time, bool) {
	if year < MinLunisolarYear || year > MaxLunisolarYear {
		return time.Time{}, false
	}
	return lunarEpoch.AddDate(0, 0, newYearOffsets[year-1900]), true
}

// LunisolarSystem is the Chinese lunisolar calendar backed by the data
// table above. In a year with a leap month L the months are numbered 1..13
// and the leap month itself carries number L+1, so every month keeps a
// distinct number.
type LunisolarSystem struct{}

// Kind implements System.
func (LunisolarSystem) Kind() Kind { return ChineseLunisolar }

// monthsInLunarYear returns 13 for leap years, 12 otherwise.
func monthsInLunarYear(year int) int {
	if lunarLeapMonth(year) != 0 {
		return 13
	}
	return 12
}

// lunarDisplayMonthDays returns the length of a month by its display number
// (1..12, or 1..13 in a leap year).
func lunarDisplayMonthDays(year, month int) int {
	leap := lunarLeapMonth(year)
	switch {
	case leap == 0 || month <= leap:
		return lunarMonthDays(year, month)
	case month == leap+1:
		return lunarLeapDays(year)
	default:
		return lunarMonthDays(year, month-1)
	}
}

// Date implements System: lunisolar fields in, absolute date out.
func (ls LunisolarSystem) Date(year, month, day, hour, min, sec, msec int) (time.Time, error) {
	if year < MinLunisolarYear || year > MaxLunisolarYear {
		return time.Time{}, fmt.Errorf("%w: lunisolar year %d outside %d-%d", ErrConversion, year, MinLunisolarYear, MaxLunisolarYear)
	}
	if month < 1 || month > monthsInLunarYear(year) {
		return time.Time{}, fmt.Errorf("%w: lunisolar year %d has no month %d", ErrConversion, year, month)
	}
	if day < 1 || day > lunarDisplayMonthDays(year, month) {
		return time.Time{}, fmt.Errorf("%w: lunisolar month %d-%02d has no day %d", ErrConversion, year, month, day)
	}

	offset := newYearOffsets[year-1900]
	for m := 1; m < month; m++ {
		offset += lunarDisplayMonthDays(year, m)
	}
	offset += day - 1

	t := lunarEpoch.AddDate(0, 0, offset)
	return t.Add(time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(msec)*time.Millisecond), nil
}

// Fields implements System: absolute date in, lunisolar fields out.
func (ls LunisolarSystem) Fields(t time.Time) (int, int, int, error) {
	if t.Before(ls.MinSupported()) || t.After(ls.MaxSupported()) {
		return 0, 0, 0, fmt.Errorf("%w: %s outside supported lunisolar range", ErrConversion, t.Format("2006-01-02"))
	}

	y, m, d := t.UTC().Date()
	days := int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Sub(lunarEpoch).Hours() / 24)

	year := MinLunisolarYear
	for year < MaxLunisolarYear && newYearOffsets[year-1900+1] <= days {
		year++
	}
	days -= newYearOffsets[year-1900]

	month := 1
	for days >= lunarDisplayMonthDays(year, month) {
		days -= lunarDisplayMonthDays(year, month)
		month++
	}
	return year, month, days + 1, nil
}

// MinSupported implements System. Lunar 1901-01-01 fell on Feb 19, 1901.
func (LunisolarSystem) MinSupported() time.Time {
	t, _ := lunarNewYear(MinLunisolarYear)
	return t
}

// MaxSupported implements System: the last day of lunisolar year 2100.
func (LunisolarSystem) MaxSupported() time.Time {
	t, _ := lunarNewYear(MaxLunisolarYear)
	return t.AddDate(0, 0, lunarYearDays(MaxLunisolarYear)-1)
}
