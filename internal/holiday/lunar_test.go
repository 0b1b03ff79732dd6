package holiday

import (
	"testing"
	"time"
)

func TestLunarToGregorian_NewYearDay(t *testing.T) {
	t.Parallel()

	// Lunar 1/1 is the anchor date itself.
	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.February, 10},
		{2025, time.January, 29},
		{2026, time.February, 17},
		{2027, time.February, 6},
		{2028, time.January, 26},
		{2029, time.February, 13},
		{2030, time.February, 3},
	}
	for _, tc := range cases {
		got := LunarToGregorian(LunarDate{Month: 1, Days: []int{1}}, tc.year)
		if len(got) != 1 {
			t.Fatalf("year %d: expected 1 date, got %d", tc.year, len(got))
		}
		if !SameDay(got[0], date(tc.year, tc.month, tc.day)) {
			t.Errorf("year %d: lunar 1/1 = %v, want %d-%02d-%02d",
				tc.year, got[0], tc.year, tc.month, tc.day)
		}
	}
}

func TestLunarToGregorian_TetWindow2025(t *testing.T) {
	t.Parallel()

	got := LunarToGregorian(LunarDate{Month: 1, Days: []int{1, 2, 3, 4, 5}}, 2025)
	if len(got) != 5 {
		t.Fatalf("expected 5 dates, got %d", len(got))
	}
	// Jan 29 .. Feb 2, consecutive days.
	want := date(2025, time.January, 29)
	for i, d := range got {
		if !SameDay(d, want.AddDate(0, 0, i)) {
			t.Errorf("day %d: got %v, want %v", i+1, d, want.AddDate(0, 0, i))
		}
	}
}

func TestLunarToGregorian_MidAutumn(t *testing.T) {
	t.Parallel()

	// Month 8 day 15 requires summing seven month lengths.
	got := LunarToGregorian(LunarDate{Month: 8, Days: []int{15}}, 2025)
	if len(got) != 1 {
		t.Fatalf("expected 1 date, got %d", len(got))
	}
	// 2025 months 1-7: 30+29+30+29+30+30+29 = 207; +14 days from Jan 29.
	want := date(2025, time.January, 29).AddDate(0, 0, 207+14)
	if !SameDay(got[0], want) {
		t.Errorf("mid-autumn 2025 = %v, want %v", got[0], want)
	}
}

func TestLunarToGregorian_UntabulatedYear(t *testing.T) {
	t.Parallel()

	if got := LunarToGregorian(LunarDate{Month: 1, Days: []int{1}}, 2031); got != nil {
		t.Errorf("untabulated year should resolve to no dates, got %v", got)
	}
	if got := LunarToGregorian(LunarDate{Month: 1, Days: []int{1}}, 1999); got != nil {
		t.Errorf("untabulated year should resolve to no dates, got %v", got)
	}
}

func TestLunarToGregorian_Deterministic(t *testing.T) {
	t.Parallel()

	ld := LunarDate{Month: 8, Days: []int{15}}
	first := LunarToGregorian(ld, 2026)
	for i := 0; i < 10; i++ {
		again := LunarToGregorian(ld, 2026)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed", i)
		}
		for j := range again {
			if !again[j].Equal(first[j]) {
				t.Fatalf("run %d: date %d changed: %v vs %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestMatchesLunar_ExactlyTheResolvedDates(t *testing.T) {
	t.Parallel()

	ld := LunarDate{Month: 1, Days: []int{1, 2, 3}}
	resolved := LunarToGregorian(ld, 2026)
	if len(resolved) == 0 {
		t.Fatal("expected resolved dates for 2026")
	}

	inResolved := func(d time.Time) bool {
		for _, r := range resolved {
			if SameDay(d, r) {
				return true
			}
		}
		return false
	}

	// Walk the whole year: MatchesLunar must agree with membership.
	d := date(2026, time.January, 1)
	for d.Year() == 2026 {
		if got := MatchesLunar(d, ld); got != inResolved(d) {
			t.Errorf("%v: MatchesLunar = %v, membership = %v", d, got, inResolved(d))
		}
		d = d.AddDate(0, 0, 1)
	}
}

func TestMatchesLunar_IgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	ld := LunarDate{Month: 1, Days: []int{1}}
	noon := time.Date(2026, time.February, 17, 12, 30, 0, 0, time.Local)
	if !MatchesLunar(noon, ld) {
		t.Error("midday on a matching date should still match")
	}
}
