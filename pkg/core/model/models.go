package model

// LeaveStatusApproved is the only leave status that participates in
// schedule validation. Pending and rejected requests are ignored.
const LeaveStatusApproved = "approved"

// Shift represents one employee's assignment on a single calendar day.
// Times are wall-clock strings; an end time numerically earlier than the
// start time means the shift runs past midnight. A split shift carries a
// second on-duty range in SecondStartTime/SecondEndTime.
type Shift struct {
	ID              string
	EmployeeID      string
	Date            string // Format: "2006-01-02"
	StartTime       string // Format: "15:04" or "15:04:05"
	EndTime         string
	SecondStartTime string // Empty unless the shift is split
	SecondEndTime   string
	BreakMinutes    int
	Role            string
	IsDayOff        bool // Day-off placeholder, excluded from all labor math
	Published       bool
}

// Employee represents a venue staff member
type Employee struct {
	ID         string
	FullName   string
	Email      string
	Role       string
	HourlyRate float64
}

// DisplayName returns the employee's full name, falling back to their email
func (e Employee) DisplayName() string {
	if e.FullName != "" {
		return e.FullName
	}
	return e.Email
}

// LeaveRequest represents a requested absence over an inclusive date range
type LeaveRequest struct {
	ID         string
	EmployeeID string
	StartDate  string // Format: "2006-01-02", inclusive
	EndDate    string // Format: "2006-01-02", inclusive
	Status     string
	LeaveType  string // e.g. "vacation", "sick_leave"; display only
}

// AvailabilityMark records whether an employee is available on one date.
// Absence of a mark means the employee is assumed available.
type AvailabilityMark struct {
	ID         string
	EmployeeID string
	Date       string // Format: "2006-01-02"
	Available  bool
}
