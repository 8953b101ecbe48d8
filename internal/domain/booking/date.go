package booking

import "time"

// NormalizeDate truncates to midnight in loc. All date columns and date
// comparisons go through this so equality queries behave.
func NormalizeDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDate parses a YYYY-MM-DD calendar date in loc. time.Parse already
// rejects impossible dates like 2024-02-31.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, loc)
}
