package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandcafe/venueops/pkg/core/model"
)

func TestSummarize_RegularHoursOnly(t *testing.T) {
	employee := model.Employee{ID: "emp-1", FullName: "Alice Moreno", HourlyRate: 15}

	shifts := []model.Shift{
		workShift(employee.ID, "2025-06-02", "09:00", "17:00", 60),
		workShift(employee.ID, "2025-06-03", "09:00", "17:00", 60),
	}

	summary := Summarize(shifts, []model.Employee{employee}, nil)

	require.Len(t, summary.Employees, 1)
	emp := summary.Employees[0]
	assert.Equal(t, 2, emp.ShiftCount)
	assert.Equal(t, 14.0, emp.TotalHours)
	assert.Equal(t, 14.0, emp.RegularHours)
	assert.Equal(t, 0.0, emp.OvertimeHours)
	assert.Equal(t, 210.0, emp.LaborCost)
	assert.Equal(t, 14.0, summary.TotalHours)
	assert.Equal(t, 210.0, summary.TotalCost)
}

func TestSummarize_OvertimeCostedAtMultiplier(t *testing.T) {
	employee := model.Employee{ID: "emp-1", FullName: "Alice Moreno", HourlyRate: 10}

	// Six 8h days: 48h total, 8h beyond the 40h ceiling
	var shifts []model.Shift
	dates := []string{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06", "2025-06-07"}
	for _, date := range dates {
		shifts = append(shifts, workShift(employee.ID, date, "09:00", "17:00", 0))
	}

	summary := Summarize(shifts, []model.Employee{employee}, nil)

	require.Len(t, summary.Employees, 1)
	emp := summary.Employees[0]
	assert.Equal(t, 48.0, emp.TotalHours)
	assert.Equal(t, 40.0, emp.RegularHours)
	assert.Equal(t, 8.0, emp.OvertimeHours)
	// 40h at 10 plus 8h at 10*1.5
	assert.Equal(t, 520.0, emp.LaborCost)
}

func TestSummarize_DayOffShiftsSkipped(t *testing.T) {
	employee := model.Employee{ID: "emp-1", FullName: "Alice Moreno", HourlyRate: 12}

	shifts := []model.Shift{
		workShift(employee.ID, "2025-06-02", "10:00", "16:00", 0),
		{EmployeeID: employee.ID, Date: "2025-06-03", StartTime: "09:00", EndTime: "17:00", IsDayOff: true},
	}

	summary := Summarize(shifts, []model.Employee{employee}, nil)

	require.Len(t, summary.Employees, 1)
	assert.Equal(t, 1, summary.Employees[0].ShiftCount)
	assert.Equal(t, 6.0, summary.Employees[0].TotalHours)
}

func TestSummarize_EmployeesInInputOrder(t *testing.T) {
	alice := model.Employee{ID: "emp-1", FullName: "Alice Moreno", HourlyRate: 15}
	bruno := model.Employee{ID: "emp-2", FullName: "Bruno Silva", HourlyRate: 14}

	shifts := []model.Shift{
		workShift(bruno.ID, "2025-06-02", "10:00", "16:00", 0),
	}

	summary := Summarize(shifts, []model.Employee{alice, bruno}, nil)

	require.Len(t, summary.Employees, 2)
	assert.Equal(t, "Alice Moreno", summary.Employees[0].EmployeeName)
	assert.Equal(t, 0.0, summary.Employees[0].TotalHours)
	assert.Equal(t, "Bruno Silva", summary.Employees[1].EmployeeName)
	assert.Equal(t, 6.0, summary.Employees[1].TotalHours)
}

func TestSummarize_OverrideCeilingChangesOvertimeSplit(t *testing.T) {
	employee := model.Employee{ID: "emp-1", FullName: "Alice Moreno", HourlyRate: 10}

	shifts := []model.Shift{
		workShift(employee.ID, "2025-06-02", "08:00", "18:00", 0),
		workShift(employee.ID, "2025-06-03", "08:00", "18:00", 0),
	}

	ceiling := 15.0
	summary := Summarize(shifts, []model.Employee{employee}, &Overrides{MaxWeeklyHours: &ceiling})

	require.Len(t, summary.Employees, 1)
	assert.Equal(t, 20.0, summary.Employees[0].TotalHours)
	assert.Equal(t, 15.0, summary.Employees[0].RegularHours)
	assert.Equal(t, 5.0, summary.Employees[0].OvertimeHours)
}
