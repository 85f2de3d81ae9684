package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grandcafe/venueops/pkg/core/model"
)

// GetEmployees returns all employees in creation order
func (db *DB) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, full_name, email, role, hourly_rate
		FROM employees
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.Role, &e.HourlyRate); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// GetWeekShifts returns all shifts dated within [weekStart, weekEnd]
// inclusive, ordered by date then start time
func (db *DB) GetWeekShifts(ctx context.Context, weekStart, weekEnd string) ([]model.Shift, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, COALESCE(employee_id::text, ''), to_char(shift_date, 'YYYY-MM-DD'),
		       start_time, end_time, second_start_time, second_end_time,
		       break_minutes, role, is_day_off, published
		FROM shifts
		WHERE shift_date BETWEEN $1 AND $2
		ORDER BY shift_date, start_time, id
	`, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		var s model.Shift
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Date,
			&s.StartTime, &s.EndTime, &s.SecondStartTime, &s.SecondEndTime,
			&s.BreakMinutes, &s.Role, &s.IsDayOff, &s.Published); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

// GetLeaveRequests returns every leave request whose date range overlaps
// [weekStart, weekEnd]. Status filtering is left to the validator.
func (db *DB) GetLeaveRequests(ctx context.Context, weekStart, weekEnd string) ([]model.LeaveRequest, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, employee_id, to_char(start_date, 'YYYY-MM-DD'),
		       to_char(end_date, 'YYYY-MM-DD'), status, leave_type
		FROM leave_requests
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date, id
	`, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []model.LeaveRequest
	for rows.Next() {
		var lr model.LeaveRequest
		if err := rows.Scan(&lr.ID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.Status, &lr.LeaveType); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// GetAvailability returns all availability marks dated within
// [weekStart, weekEnd] inclusive
func (db *DB) GetAvailability(ctx context.Context, weekStart, weekEnd string) ([]model.AvailabilityMark, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, employee_id, to_char(mark_date, 'YYYY-MM-DD'), available
		FROM availability
		WHERE mark_date BETWEEN $1 AND $2
		ORDER BY mark_date, id
	`, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var marks []model.AvailabilityMark
	for rows.Next() {
		var m model.AvailabilityMark
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.Date, &m.Available); err != nil {
			return nil, fmt.Errorf("failed to scan availability mark: %w", err)
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// InsertShifts writes a batch of draft shifts in a single round trip
func (db *DB) InsertShifts(ctx context.Context, shifts []model.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, s := range shifts {
		batch.Queue(`
			INSERT INTO shifts (id, employee_id, shift_date, start_time, end_time,
			                    second_start_time, second_end_time, break_minutes,
			                    role, is_day_off, published)
			VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, s.ID, s.EmployeeID, s.Date, s.StartTime, s.EndTime,
			s.SecondStartTime, s.SecondEndTime, s.BreakMinutes,
			s.Role, s.IsDayOff, s.Published)
	}

	results := db.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range shifts {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert shift: %w", err)
		}
	}
	return nil
}

// PublishWeekShifts marks every shift in [weekStart, weekEnd] inclusive as
// published and returns the number of shifts affected
func (db *DB) PublishWeekShifts(ctx context.Context, weekStart, weekEnd string) (int, error) {
	tag, err := db.pool.Exec(ctx, `
		UPDATE shifts
		SET published = TRUE
		WHERE shift_date BETWEEN $1 AND $2 AND NOT published
	`, weekStart, weekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to publish shifts: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
