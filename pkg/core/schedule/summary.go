package schedule

import (
	"github.com/grandcafe/venueops/pkg/core/model"
)

// EmployeeSummary is one employee's scheduled hours and labor cost for a week
type EmployeeSummary struct {
	EmployeeID    string
	EmployeeName  string
	ShiftCount    int
	TotalHours    float64
	RegularHours  float64
	OvertimeHours float64
	LaborCost     float64
}

// WeekSummary aggregates scheduled hours and labor cost across the roster
type WeekSummary struct {
	Employees  []EmployeeSummary
	TotalHours float64
	TotalCost  float64
}

// Summarize rolls up net scheduled hours and labor cost per employee for a
// week's shifts. Hours beyond the weekly ceiling are costed at the overtime
// multiplier. Day-off placeholders are skipped; negative net hours from
// oversized breaks are included as-is so totals reconcile with validation.
// Employees appear in input order.
func Summarize(shifts []model.Shift, employees []model.Employee, overrides *Overrides) WeekSummary {
	constraints := DefaultConstraints().Apply(overrides)

	shiftsByEmployee := make(map[string][]model.Shift)
	for _, shift := range shifts {
		shiftsByEmployee[shift.EmployeeID] = append(shiftsByEmployee[shift.EmployeeID], shift)
	}

	summary := WeekSummary{
		Employees: make([]EmployeeSummary, 0, len(employees)),
	}

	for _, employee := range employees {
		emp := EmployeeSummary{
			EmployeeID:   employee.ID,
			EmployeeName: employee.DisplayName(),
		}

		for _, s := range shiftsByEmployee[employee.ID] {
			if s.IsDayOff {
				continue
			}
			emp.TotalHours += ShiftHours(s)
			emp.ShiftCount++
		}

		emp.RegularHours = emp.TotalHours
		if emp.TotalHours > constraints.MaxWeeklyHours {
			emp.RegularHours = constraints.MaxWeeklyHours
			emp.OvertimeHours = emp.TotalHours - constraints.MaxWeeklyHours
		}

		emp.LaborCost = emp.RegularHours*employee.HourlyRate +
			emp.OvertimeHours*employee.HourlyRate*constraints.OvertimeMultiplier

		summary.Employees = append(summary.Employees, emp)
		summary.TotalHours += emp.TotalHours
		summary.TotalCost += emp.LaborCost
	}

	return summary
}
