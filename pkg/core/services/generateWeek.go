package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/grandcafe/venueops/internal/config"
	"github.com/grandcafe/venueops/pkg/core/model"
)

// DraftStore defines the database operations needed to store generated
// draft shifts
type DraftStore interface {
	InsertShifts(ctx context.Context, shifts []model.Shift) error
}

// GeneratedWeek describes the draft shifts produced for one week
type GeneratedWeek struct {
	WeekStart string
	WeekEnd   string
	Shifts    []model.Shift
}

// GenerateWeek expands the configured recurring shift templates into
// unassigned draft shifts for the week starting at weekStart (a Monday) and
// stores them. Drafts stay unpublished until the publish workflow has run
// the compliance validator over the assigned week.
func GenerateWeek(
	ctx context.Context,
	store DraftStore,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
) (*GeneratedWeek, error) {
	start, weekEnd, err := weekBounds(weekStart)
	if err != nil {
		return nil, err
	}

	if len(cfg.ShiftTemplates) == 0 {
		return nil, fmt.Errorf("no shift templates configured")
	}

	logger.Info("Generating draft week",
		zap.String("week_start", weekStart),
		zap.Int("templates", len(cfg.ShiftTemplates)))

	var shifts []model.Shift
	for _, tmpl := range cfg.ShiftTemplates {
		rule, err := rrule.StrToRRule(tmpl.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule for template %q: %w", tmpl.Name, err)
		}
		rule.DTStart(start)

		// All occurrences within the week, inclusive of both bounds
		dates := rule.Between(start, start.AddDate(0, 0, 7).Add(-time.Second), true)

		logger.Debug("Expanded template",
			zap.String("template", tmpl.Name),
			zap.Int("occurrences", len(dates)))

		for _, date := range dates {
			shifts = append(shifts, model.Shift{
				ID:              uuid.New().String(),
				Date:            date.Format(dateLayout),
				StartTime:       tmpl.StartTime,
				EndTime:         tmpl.EndTime,
				SecondStartTime: tmpl.SecondStartTime,
				SecondEndTime:   tmpl.SecondEndTime,
				BreakMinutes:    tmpl.BreakMinutes,
				Role:            tmpl.Role,
			})
		}
	}

	if err := store.InsertShifts(ctx, shifts); err != nil {
		return nil, fmt.Errorf("failed to store draft shifts: %w", err)
	}

	logger.Info("Draft week generated",
		zap.String("week_start", weekStart),
		zap.Int("shift_count", len(shifts)))

	return &GeneratedWeek{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Shifts:    shifts,
	}, nil
}
