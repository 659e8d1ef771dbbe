package utils

import (
	"testing"
	"time"
)

func TestWeekStartIsMonday(t *testing.T) {
	t.Parallel()

	cases := []struct {
		day  string
		want string
	}{
		{"2024-01-01", "2024-01-01"}, // Monday maps to itself
		{"2024-01-02", "2024-01-01"}, // Tuesday
		{"2024-01-03", "2024-01-01"}, // Wednesday
		{"2024-01-07", "2024-01-01"}, // Sunday belongs to the preceding Monday
		{"2024-01-08", "2024-01-08"}, // next Monday starts a new week
		{"2024-03-03", "2024-02-26"}, // month boundary
	}

	for _, tc := range cases {
		got, err := WeekStartDay(tc.day)
		if err != nil {
			t.Fatalf("week start of %s: %v", tc.day, err)
		}
		if got != tc.want {
			t.Fatalf("week start of %s: got %s, want %s", tc.day, got, tc.want)
		}
	}
}

func TestWeekStartDayRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "01-01-2024", "2024-13-40", "yesterday"} {
		if _, err := WeekStartDay(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 1, 0, 0, 0, time.UTC)
	if got := DaysBetween(start, end); got != 2 {
		t.Fatalf("days between: got %d, want 2", got)
	}
}
