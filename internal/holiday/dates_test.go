package holiday

import (
	"math/rand"
	"testing"
	"testing/quick"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestSameDay(t *testing.T) {
	t.Parallel()

	a := time.Date(2025, time.December, 25, 3, 14, 15, 0, time.Local)
	b := time.Date(2025, time.December, 25, 23, 59, 59, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("same calendar day with different times should match")
	}
	if SameDay(a, a.AddDate(0, 0, 1)) {
		t.Error("consecutive days should not match")
	}
	if SameDay(a, a.AddDate(1, 0, 0)) {
		t.Error("same month/day in different years should not match")
	}
}

func TestDateInRange_SameMonth(t *testing.T) {
	t.Parallel()

	start := DateMark{Month: 12, Day: 1}
	end := DateMark{Month: 12, Day: 26}

	cases := []struct {
		name string
		d    time.Time
		want bool
	}{
		{"start boundary", date(2025, time.December, 1), true},
		{"end boundary", date(2025, time.December, 26), true},
		{"inside", date(2025, time.December, 25), true},
		{"day after end", date(2025, time.December, 27), false},
		{"day before start in prior month", date(2025, time.November, 30), false},
		{"unrelated month", date(2025, time.June, 15), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DateInRange(tc.d, start, end); got != tc.want {
				t.Errorf("DateInRange(%v) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}
}

func TestDateInRange_AcrossMonths(t *testing.T) {
	t.Parallel()

	start := DateMark{Month: 10, Day: 25}
	end := DateMark{Month: 11, Day: 3}

	cases := []struct {
		d    time.Time
		want bool
	}{
		{date(2025, time.October, 24), false},
		{date(2025, time.October, 25), true},
		{date(2025, time.October, 31), true},
		{date(2025, time.November, 1), true},
		{date(2025, time.November, 3), true},
		{date(2025, time.November, 4), false},
	}
	for _, tc := range cases {
		if got := DateInRange(tc.d, start, end); got != tc.want {
			t.Errorf("DateInRange(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestDateInRange_WrapsYearEnd(t *testing.T) {
	t.Parallel()

	start := DateMark{Month: 12, Day: 28}
	end := DateMark{Month: 1, Day: 2}

	cases := []struct {
		d    time.Time
		want bool
	}{
		{date(2025, time.December, 27), false},
		{date(2025, time.December, 28), true},
		{date(2025, time.December, 31), true},
		{date(2026, time.January, 1), true},
		{date(2026, time.January, 2), true},
		{date(2026, time.January, 3), false},
		{date(2025, time.June, 15), false},
	}
	for _, tc := range cases {
		if got := DateInRange(tc.d, start, end); got != tc.want {
			t.Errorf("DateInRange(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

// Property: for non-wrapping ranges, containment is exactly lexicographic
// (month, day) order between the endpoints.
func TestProperty_NonWrappingRangeIsLexicographic(t *testing.T) {
	t.Parallel()

	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))

		start := DateMark{Month: time.Month(r.Intn(12) + 1), Day: r.Intn(28) + 1}
		end := DateMark{Month: start.Month + time.Month(r.Intn(int(12-start.Month)+1)), Day: r.Intn(28) + 1}
		if start.Month == end.Month && end.Day < start.Day {
			start.Day, end.Day = end.Day, start.Day
		}

		d := date(2026, time.Month(r.Intn(12)+1), r.Intn(28)+1)
		key := func(m time.Month, day int) int { return int(m)*100 + day }

		want := key(d.Month(), d.Day()) >= key(start.Month, start.Day) &&
			key(d.Month(), d.Day()) <= key(end.Month, end.Day)
		got := DateInRange(d, start, end)
		if got != want {
			t.Logf("start=%v end=%v d=%v got=%v want=%v", start, end, d, got, want)
		}
		return got == want
	}

	if err := quick.Check(f, &quick.Config{MaxCount: 500}); err != nil {
		t.Errorf("lexicographic property failed: %v", err)
	}
}
