package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/grandcafe/venueops/pkg/core/schedule"
)

// ErrScheduleInvalid is returned when publication is blocked by validation
// errors. The accompanying PublishResult carries the violations.
var ErrScheduleInvalid = errors.New("schedule has validation errors")

// ErrWarningsNotAcknowledged is returned when a schedule carries advisory
// warnings and the caller has not acknowledged them
var ErrWarningsNotAcknowledged = errors.New("schedule has unacknowledged warnings")

// PublishStore defines the database operations needed to publish a week
type PublishStore interface {
	ScheduleStore
	PublishWeekShifts(ctx context.Context, weekStart, weekEnd string) (int, error)
}

// PublishResult describes the outcome of a publish attempt. Validation is
// always populated, so callers can render violations even when publication
// was blocked.
type PublishResult struct {
	WeekStart  string
	WeekEnd    string
	Validation schedule.ValidationResult
	Published  bool
	ShiftCount int
}

// PublishWeek validates the week starting at weekStart and, when the
// schedule is sound, marks its shifts as published in one batch. Validation
// errors always block publication; warnings block it unless the caller has
// acknowledged them.
func PublishWeek(
	ctx context.Context,
	store PublishStore,
	logger *zap.Logger,
	weekStart string,
	overrides *schedule.Overrides,
	acknowledgeWarnings bool,
) (*PublishResult, error) {
	week, err := ValidateWeek(ctx, store, logger, weekStart, overrides)
	if err != nil {
		return nil, err
	}

	result := &PublishResult{
		WeekStart:  week.WeekStart,
		WeekEnd:    week.WeekEnd,
		Validation: week.Result,
	}

	if !week.Result.Valid {
		logger.Warn("Publication blocked by validation errors",
			zap.String("week_start", weekStart),
			zap.Int("errors", len(week.Result.Errors)))
		return result, ErrScheduleInvalid
	}

	if len(week.Result.Warnings) > 0 && !acknowledgeWarnings {
		logger.Warn("Publication blocked by unacknowledged warnings",
			zap.String("week_start", weekStart),
			zap.Int("warnings", len(week.Result.Warnings)))
		return result, ErrWarningsNotAcknowledged
	}

	count, err := store.PublishWeekShifts(ctx, week.WeekStart, week.WeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to publish week shifts: %w", err)
	}

	result.Published = true
	result.ShiftCount = count

	logger.Info("Week schedule published",
		zap.String("week_start", weekStart),
		zap.Int("shift_count", count),
		zap.Int("acknowledged_warnings", len(week.Result.Warnings)))

	return result, nil
}
