package services

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// weekBounds resolves a week-start date string into its parsed time and the
// inclusive week-end date string six days later. The scheduling week runs
// Monday through Sunday.
func weekBounds(weekStart string) (time.Time, string, error) {
	start, err := time.Parse(dateLayout, weekStart)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid week start date %q: %w", weekStart, err)
	}
	if start.Weekday() != time.Monday {
		return time.Time{}, "", fmt.Errorf("week start %s is a %s, must be a Monday", weekStart, start.Weekday())
	}

	weekEnd := start.AddDate(0, 0, 6).Format(dateLayout)
	return start, weekEnd, nil
}
