package schedule

// Constraints holds the labor policy a weekly schedule is checked against.
// Values are passed into each validation call; there is no package-level
// mutable policy state.
type Constraints struct {
	// MaxWeeklyHours is the hard ceiling on net scheduled hours per employee
	MaxWeeklyHours float64

	// MinRestBetweenShifts is the minimum whole-hour gap between an
	// employee's consecutive shifts
	MinRestBetweenShifts float64

	// MinDaysOffPerWeek is the minimum number of calendar days without a
	// work shift per employee
	MinDaysOffPerWeek int

	// OvertimeMultiplier is the pay multiplier applied to hours beyond
	// MaxWeeklyHours in cost summaries
	OvertimeMultiplier float64

	// OvertimeWarningThreshold triggers an advisory warning when an
	// employee's weekly hours exceed it without exceeding the ceiling
	OvertimeWarningThreshold float64
}

// DefaultConstraints returns the venue's baseline labor policy
func DefaultConstraints() Constraints {
	return Constraints{
		MaxWeeklyHours:           40,
		MinRestBetweenShifts:     12,
		MinDaysOffPerWeek:        1,
		OvertimeMultiplier:       1.5,
		OvertimeWarningThreshold: 35,
	}
}

// Overrides is a partial labor policy. Nil fields fall back to the defaults,
// so callers can tighten or relax individual limits without restating the
// whole policy.
type Overrides struct {
	MaxWeeklyHours           *float64
	MinRestBetweenShifts     *float64
	MinDaysOffPerWeek        *int
	OvertimeMultiplier       *float64
	OvertimeWarningThreshold *float64
}

// Apply merges non-nil override fields over the receiver and returns the
// merged policy. A nil override returns the receiver unchanged.
func (c Constraints) Apply(o *Overrides) Constraints {
	if o == nil {
		return c
	}
	if o.MaxWeeklyHours != nil {
		c.MaxWeeklyHours = *o.MaxWeeklyHours
	}
	if o.MinRestBetweenShifts != nil {
		c.MinRestBetweenShifts = *o.MinRestBetweenShifts
	}
	if o.MinDaysOffPerWeek != nil {
		c.MinDaysOffPerWeek = *o.MinDaysOffPerWeek
	}
	if o.OvertimeMultiplier != nil {
		c.OvertimeMultiplier = *o.OvertimeMultiplier
	}
	if o.OvertimeWarningThreshold != nil {
		c.OvertimeWarningThreshold = *o.OvertimeWarningThreshold
	}
	return c
}
