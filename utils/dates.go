// utils/dates.go
package utils

import "time"

const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD calendar day key into a UTC midnight instant.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DayLayout, value)
}

func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// WeekStart returns the Monday of the ISO week containing t.
func WeekStart(t time.Time) time.Time {
	t = BeginningOfDay(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// WeekStartDay normalizes a day key to its week's Monday key.
func WeekStartDay(value string) (string, error) {
	day, err := ParseDay(value)
	if err != nil {
		return "", err
	}
	return FormatDay(WeekStart(day)), nil
}
