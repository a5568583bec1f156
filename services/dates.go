package services

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// parseDay parses an ISO-8601 calendar date in the configured local timezone.
func parseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func dayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

func dayKey(t time.Time) string { return dayStart(t).Format(dayFormat) }
