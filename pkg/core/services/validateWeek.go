package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/grandcafe/venueops/pkg/core/model"
	"github.com/grandcafe/venueops/pkg/core/schedule"
)

// ScheduleStore defines the database operations needed to load a week's
// schedule inputs
type ScheduleStore interface {
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	GetWeekShifts(ctx context.Context, weekStart, weekEnd string) ([]model.Shift, error)
	GetLeaveRequests(ctx context.Context, weekStart, weekEnd string) ([]model.LeaveRequest, error)
	GetAvailability(ctx context.Context, weekStart, weekEnd string) ([]model.AvailabilityMark, error)
}

// WeekValidation bundles a week's loaded inputs with its validation outcome
type WeekValidation struct {
	WeekStart string
	WeekEnd   string
	Shifts    []model.Shift
	Employees []model.Employee
	Result    schedule.ValidationResult
}

// ValidateWeek loads the shifts, employee directory, leave requests and
// availability marks for the week starting at weekStart (a Monday), runs the
// labor compliance validator over them and returns the structured result.
// Constraint overrides may be nil to validate against the default policy.
func ValidateWeek(
	ctx context.Context,
	store ScheduleStore,
	logger *zap.Logger,
	weekStart string,
	overrides *schedule.Overrides,
) (*WeekValidation, error) {
	_, weekEnd, err := weekBounds(weekStart)
	if err != nil {
		return nil, err
	}

	logger.Info("Validating week schedule", zap.String("week_start", weekStart), zap.String("week_end", weekEnd))

	employees, err := store.GetEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	shifts, err := store.GetWeekShifts(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shifts: %w", err)
	}

	leaveRequests, err := store.GetLeaveRequests(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leave requests: %w", err)
	}

	availability, err := store.GetAvailability(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}

	logger.Debug("Week inputs loaded",
		zap.Int("shifts", len(shifts)),
		zap.Int("employees", len(employees)),
		zap.Int("leave_requests", len(leaveRequests)),
		zap.Int("availability_marks", len(availability)))

	result := schedule.Validate(shifts, employees, leaveRequests, availability, overrides)

	logger.Info("Week schedule validated",
		zap.String("week_start", weekStart),
		zap.Bool("valid", result.Valid),
		zap.Int("errors", len(result.Errors)),
		zap.Int("warnings", len(result.Warnings)))

	return &WeekValidation{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Shifts:    shifts,
		Employees: employees,
		Result:    result,
	}, nil
}
