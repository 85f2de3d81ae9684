package schedule

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/grandcafe/venueops/pkg/core/model"
)

// ViolationType classifies a labor rule violation
type ViolationType string

const (
	ViolationMaxHours      ViolationType = "max_hours"
	ViolationMinRest       ViolationType = "min_rest"
	ViolationDaysOff       ViolationType = "days_off"
	ViolationLeaveConflict ViolationType = "leave_conflict"
	ViolationAvailability  ViolationType = "availability"
)

// Severity distinguishes schedule-blocking errors from advisory warnings
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Violation is one labor rule breach found during validation. Roster-wide
// coverage issues carry an empty EmployeeID and the name "Coverage".
// Violations exist only within a single validation result; they are never
// persisted.
type Violation struct {
	EmployeeID   string
	EmployeeName string
	Type         ViolationType
	Message      string
	Severity     Severity
}

// ValidationResult is the outcome of validating one week's schedule.
// Valid is true iff there are no errors; warnings never block publication.
type ValidationResult struct {
	Valid    bool
	Errors   []Violation
	Warnings []Violation
}

// Validate checks a week's proposed shift assignments against the venue's
// labor constraints and returns every violation it finds in one pass.
//
// Per employee, in input order: weekly hour totals, rest gaps between
// consecutive shifts, minimum days off, conflicts with approved leave, and
// conflicts with unavailability marks. A roster-wide check then warns about
// Sundays with no staff scheduled. Day-off placeholder shifts are excluded
// from all per-employee math.
//
// Shifts referencing employees missing from the employee list are tolerated
// and simply never checked. Missing availability marks mean "available";
// non-approved leave is ignored. Identical inputs always produce identical
// results.
func Validate(
	shifts []model.Shift,
	employees []model.Employee,
	leaveRequests []model.LeaveRequest,
	availability []model.AvailabilityMark,
	overrides *Overrides,
) ValidationResult {
	constraints := DefaultConstraints().Apply(overrides)

	var errors, warnings []Violation

	// Group shifts by employee
	shiftsByEmployee := make(map[string][]model.Shift)
	for _, shift := range shifts {
		shiftsByEmployee[shift.EmployeeID] = append(shiftsByEmployee[shift.EmployeeID], shift)
	}

	// Approved leave by employee
	leaveByEmployee := make(map[string][]model.LeaveRequest)
	for _, lr := range leaveRequests {
		if lr.Status != model.LeaveStatusApproved {
			continue
		}
		leaveByEmployee[lr.EmployeeID] = append(leaveByEmployee[lr.EmployeeID], lr)
	}

	// Dates each employee is marked unavailable on
	unavailableDates := make(map[string]map[string]bool)
	for _, mark := range availability {
		if mark.Available {
			continue
		}
		if unavailableDates[mark.EmployeeID] == nil {
			unavailableDates[mark.EmployeeID] = make(map[string]bool)
		}
		unavailableDates[mark.EmployeeID][mark.Date] = true
	}

	for _, employee := range employees {
		empName := employee.DisplayName()

		// Day-off placeholders don't count toward hours, rest or day totals
		var workShifts []model.Shift
		for _, s := range shiftsByEmployee[employee.ID] {
			if !s.IsDayOff {
				workShifts = append(workShifts, s)
			}
		}

		// 1. Max weekly hours
		var totalHours float64
		for _, s := range workShifts {
			totalHours += ShiftHours(s)
		}

		if totalHours > constraints.MaxWeeklyHours {
			errors = append(errors, Violation{
				EmployeeID:   employee.ID,
				EmployeeName: empName,
				Type:         ViolationMaxHours,
				Message:      fmt.Sprintf("%s has %.1fh scheduled (max %gh)", empName, totalHours, constraints.MaxWeeklyHours),
				Severity:     SeverityError,
			})
		} else if totalHours > constraints.OvertimeWarningThreshold {
			warnings = append(warnings, Violation{
				EmployeeID:   employee.ID,
				EmployeeName: empName,
				Type:         ViolationMaxHours,
				Message:      fmt.Sprintf("%s is approaching overtime: %.1fh", empName, totalHours),
				Severity:     SeverityWarning,
			})
		}

		// 2. Min rest between consecutive shifts
		sorted := slices.Clone(workShifts)
		slices.SortStableFunc(sorted, func(a, b model.Shift) int {
			return ShiftStart(a).Compare(ShiftStart(b))
		})

		for i := 0; i+1 < len(sorted); i++ {
			currentEnd := ShiftEnd(sorted[i])
			nextStart := ShiftStart(sorted[i+1])
			// Whole hours, truncated toward zero. Overlapping shifts yield a
			// negative gap and are not reported by this rule.
			restHours := int(nextStart.Sub(currentEnd).Hours())

			if float64(restHours) < constraints.MinRestBetweenShifts && restHours >= 0 {
				errors = append(errors, Violation{
					EmployeeID:   employee.ID,
					EmployeeName: empName,
					Type:         ViolationMinRest,
					Message: fmt.Sprintf("%s has only %dh rest between %s and %s (min %gh)",
						empName, restHours, weekdayName(sorted[i].Date), weekdayName(sorted[i+1].Date), constraints.MinRestBetweenShifts),
					Severity: SeverityError,
				})
			}
		}

		// 3. Min days off per week
		workingDays := make(map[string]bool)
		for _, s := range workShifts {
			workingDays[s.Date] = true
		}
		daysOff := 7 - len(workingDays)

		if daysOff < constraints.MinDaysOffPerWeek {
			errors = append(errors, Violation{
				EmployeeID:   employee.ID,
				EmployeeName: empName,
				Type:         ViolationDaysOff,
				Message:      fmt.Sprintf("%s has only %d day(s) off (min %d)", empName, daysOff, constraints.MinDaysOffPerWeek),
				Severity:     SeverityError,
			})
		}

		// 4. Leave conflicts. ISO dates compare correctly as strings, and the
		// leave range is inclusive on both ends.
		for _, s := range workShifts {
			for _, leave := range leaveByEmployee[employee.ID] {
				if s.Date >= leave.StartDate && s.Date <= leave.EndDate {
					errors = append(errors, Violation{
						EmployeeID:   employee.ID,
						EmployeeName: empName,
						Type:         ViolationLeaveConflict,
						Message: fmt.Sprintf("%s has a shift on %s but is on %s",
							empName, shortDate(s.Date), strings.ReplaceAll(leave.LeaveType, "_", " ")),
						Severity: SeverityError,
					})
				}
			}
		}

		// 5. Availability conflicts
		for _, s := range workShifts {
			if unavailableDates[employee.ID][s.Date] {
				errors = append(errors, Violation{
					EmployeeID:   employee.ID,
					EmployeeName: empName,
					Type:         ViolationAvailability,
					Message:      fmt.Sprintf("%s is marked unavailable on %s", empName, shortDate(s.Date)),
					Severity:     SeverityError,
				})
			}
		}
	}

	// 6. Sunday coverage across the whole roster. Distinct dates are scanned
	// in first-appearance order to keep results deterministic.
	seenDates := make(map[string]bool)
	for _, shift := range shifts {
		if seenDates[shift.Date] {
			continue
		}
		seenDates[shift.Date] = true

		day, err := time.Parse(dateLayout, shift.Date)
		if err != nil || day.Weekday() != time.Sunday {
			continue
		}

		covered := false
		for _, s := range shifts {
			if s.Date == shift.Date && !s.IsDayOff {
				covered = true
				break
			}
		}
		if !covered {
			warnings = append(warnings, Violation{
				EmployeeID:   "",
				EmployeeName: "Coverage",
				Type:         ViolationAvailability,
				Message:      fmt.Sprintf("No staff scheduled on Sunday %s", day.Format("02/01")),
				Severity:     SeverityWarning,
			})
		}
	}

	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// weekdayName formats an ISO date as its weekday abbreviation, e.g. "Mon"
func weekdayName(date string) string {
	day, _ := time.Parse(dateLayout, date)
	return day.Format("Mon")
}

// shortDate formats an ISO date as "Mon 02/01"
func shortDate(date string) string {
	day, _ := time.Parse(dateLayout, date)
	return day.Format("Mon 02/01")
}
