package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grandcafe/venueops/internal/config"
)

func testConfig(templates ...config.ShiftTemplate) *config.Config {
	return &config.Config{
		VenueName:      "GrandCafe Cheers",
		DatabaseURL:    "postgres://localhost/venueops",
		ShiftTemplates: templates,
	}
}

func TestGenerateWeek_ExpandsWeekdayTemplate(t *testing.T) {
	mock := &mockStore{}
	cfg := testConfig(config.ShiftTemplate{
		Name:         "Lunch service",
		RRule:        "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
		StartTime:    "11:00",
		EndTime:      "16:00",
		BreakMinutes: 30,
		Role:         "server",
	})

	week, err := GenerateWeek(context.Background(), mock, cfg, zap.NewNop(), "2025-06-02")
	require.NoError(t, err)

	require.Len(t, week.Shifts, 5)
	assert.Equal(t, "2025-06-02", week.Shifts[0].Date)
	assert.Equal(t, "2025-06-06", week.Shifts[4].Date)

	for _, s := range week.Shifts {
		assert.NotEmpty(t, s.ID)
		assert.Empty(t, s.EmployeeID, "draft shifts start unassigned")
		assert.Equal(t, "11:00", s.StartTime)
		assert.Equal(t, "16:00", s.EndTime)
		assert.Equal(t, 30, s.BreakMinutes)
		assert.Equal(t, "server", s.Role)
		assert.False(t, s.Published)
	}

	assert.Len(t, mock.insertedShifts, 5)
}

func TestGenerateWeek_MultipleTemplatesIncludingSplit(t *testing.T) {
	mock := &mockStore{}
	cfg := testConfig(
		config.ShiftTemplate{
			Name:      "Weekend dinner",
			RRule:     "FREQ=WEEKLY;BYDAY=SA,SU",
			StartTime: "18:00",
			EndTime:   "01:00",
			Role:      "server",
		},
		config.ShiftTemplate{
			Name:            "Saturday split",
			RRule:           "FREQ=WEEKLY;BYDAY=SA",
			StartTime:       "10:00",
			EndTime:         "14:00",
			SecondStartTime: "18:00",
			SecondEndTime:   "22:00",
			Role:            "bartender",
		},
	)

	week, err := GenerateWeek(context.Background(), mock, cfg, zap.NewNop(), "2025-06-02")
	require.NoError(t, err)

	// Two dinner shifts (Sat, Sun) plus one split shift (Sat)
	require.Len(t, week.Shifts, 3)
	assert.Equal(t, "2025-06-07", week.Shifts[0].Date)
	assert.Equal(t, "2025-06-08", week.Shifts[1].Date)

	split := week.Shifts[2]
	assert.Equal(t, "2025-06-07", split.Date)
	assert.Equal(t, "18:00", split.SecondStartTime)
	assert.Equal(t, "22:00", split.SecondEndTime)
}

func TestGenerateWeek_NoTemplatesConfigured(t *testing.T) {
	mock := &mockStore{}

	_, err := GenerateWeek(context.Background(), mock, testConfig(), zap.NewNop(), "2025-06-02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no shift templates")
}

func TestGenerateWeek_RejectsNonMondayWeekStart(t *testing.T) {
	mock := &mockStore{}
	cfg := testConfig(config.ShiftTemplate{
		Name:      "Lunch service",
		RRule:     "FREQ=WEEKLY;BYDAY=MO",
		StartTime: "11:00",
		EndTime:   "16:00",
	})

	_, err := GenerateWeek(context.Background(), mock, cfg, zap.NewNop(), "2025-06-04")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be a Monday")
}

func TestGenerateWeek_InsertFailurePropagates(t *testing.T) {
	mock := &mockStore{insertErr: assert.AnError}
	cfg := testConfig(config.ShiftTemplate{
		Name:      "Lunch service",
		RRule:     "FREQ=WEEKLY;BYDAY=MO",
		StartTime: "11:00",
		EndTime:   "16:00",
	})

	_, err := GenerateWeek(context.Background(), mock, cfg, zap.NewNop(), "2025-06-02")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store draft shifts")
}
