package schedule

import (
	"strconv"
	"strings"

	"github.com/grandcafe/venueops/pkg/core/model"
)

const minutesPerDay = 24 * 60

// clockParts splits an "HH:MM" or "HH:MM:SS" wall-clock string into its hour
// and minute components. Seconds are ignored. Clock strings are validated by
// the data layer before they reach this package.
func clockParts(clock string) (hour, minute int) {
	parts := strings.SplitN(clock, ":", 3)
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}

// minuteOfDay converts a wall-clock string to minutes since midnight
func minuteOfDay(clock string) int {
	h, m := clockParts(clock)
	return h*60 + m
}

// rangeMinutes returns the length of a wall-clock range in minutes. An end
// time numerically earlier than the start wraps past midnight.
func rangeMinutes(start, end string) int {
	d := minuteOfDay(end) - minuteOfDay(start)
	if d < 0 {
		d += minutesPerDay
	}
	return d
}

// ShiftHours returns the net worked hours of a shift: both on-duty ranges for
// a split shift, minus break time. The result is not clamped, so a break
// longer than the shift yields negative hours.
func ShiftHours(s model.Shift) float64 {
	return CalculateShiftHours(s.StartTime, s.EndTime, s.BreakMinutes, s.SecondStartTime, s.SecondEndTime)
}

// CalculateShiftHours computes net worked hours from raw shift time fields.
// Pass empty strings for secondStart/secondEnd when the shift is not split.
func CalculateShiftHours(startTime, endTime string, breakMinutes int, secondStart, secondEnd string) float64 {
	duration := rangeMinutes(startTime, endTime)

	if secondStart != "" && secondEnd != "" {
		duration += rangeMinutes(secondStart, secondEnd)
	}

	return float64(duration-breakMinutes) / 60
}
