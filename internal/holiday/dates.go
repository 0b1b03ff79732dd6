package holiday

import "time"

// Today returns the current local date normalized to midnight.
func Today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// SameDay reports whether two instants fall on the same calendar day,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateInRange reports whether t's (month, day) falls inside [start, end]
// inclusive. The year is irrelevant: ranges recur annually. A range whose
// start month is greater than its end month wraps the year boundary
// (e.g. Dec 28 - Jan 2), meaning active through year-end and again from
// year-start.
func DateInRange(t time.Time, start, end DateMark) bool {
	month := t.Month()
	day := t.Day()

	if start.Month > end.Month {
		// Wrapping range: months strictly after start or strictly before
		// end are fully inside.
		return (month == start.Month && day >= start.Day) ||
			(month == end.Month && day <= end.Day) ||
			month > start.Month ||
			month < end.Month
	}

	if start.Month == end.Month {
		return month == start.Month && day >= start.Day && day <= end.Day
	}

	return (month == start.Month && day >= start.Day) ||
		(month == end.Month && day <= end.Day) ||
		(month > start.Month && month < end.Month)
}
