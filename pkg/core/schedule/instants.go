package schedule

import (
	"time"

	"github.com/grandcafe/venueops/pkg/core/model"
)

const dateLayout = "2006-01-02"

// ShiftStart returns the absolute instant a shift begins: its calendar date
// at its start wall-clock time.
func ShiftStart(s model.Shift) time.Time {
	day, _ := time.Parse(dateLayout, s.Date)
	h, m := clockParts(s.StartTime)
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

// ShiftEnd returns the absolute instant a shift ends. When the end hour is
// numerically below the start hour the shift crosses midnight, so the end
// lands on the following day. Only the hour component decides the wrap: a
// shift that starts and ends within the same clock hour is never treated as
// overnight, even if its end minute precedes its start minute.
func ShiftEnd(s model.Shift) time.Time {
	day, _ := time.Parse(dateLayout, s.Date)
	endHour, endMinute := clockParts(s.EndTime)
	startHour, _ := clockParts(s.StartTime)

	end := day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMinute)*time.Minute)
	if endHour < startHour {
		end = end.AddDate(0, 0, 1)
	}
	return end
}
