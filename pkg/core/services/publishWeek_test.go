package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grandcafe/venueops/pkg/core/model"
)

func TestPublishWeek_CleanSchedulePublishes(t *testing.T) {
	employee := model.Employee{ID: "emp-1", FullName: "Alice Moreno"}
	mock := &mockStore{
		employees: []model.Employee{employee},
		shifts: []model.Shift{
			{EmployeeID: employee.ID, Date: "2025-06-02", StartTime: "10:00", EndTime: "16:00"},
		},
	}

	result, err := PublishWeek(context.Background(), mock, zap.NewNop(), "2025-06-02", nil, false)
	require.NoError(t, err)

	assert.True(t, result.Published)
	assert.Equal(t, 1, result.ShiftCount)
	assert.Equal(t, []string{"2025-06-02"}, mock.publishedWeeks)
}

func TestPublishWeek_BlockedByValidationErrors(t *testing.T) {
	employee := model.Employee{ID: "emp-1", FullName: "Alice Moreno"}
	mock := &mockStore{
		employees: []model.Employee{employee},
		shifts: []model.Shift{
			{EmployeeID: employee.ID, Date: "2025-06-02", StartTime: "14:00", EndTime: "22:00"},
			{EmployeeID: employee.ID, Date: "2025-06-03", StartTime: "09:00", EndTime: "17:00"},
		},
	}

	result, err := PublishWeek(context.Background(), mock, zap.NewNop(), "2025-06-02", nil, false)
	require.ErrorIs(t, err, ErrScheduleInvalid)

	// The blocked result still carries the violations for display
	require.NotNil(t, result)
	assert.False(t, result.Published)
	assert.NotEmpty(t, result.Validation.Errors)
	assert.Empty(t, mock.publishedWeeks)
}

func TestPublishWeek_WarningsBlockUntilAcknowledged(t *testing.T) {
	employee := model.Employee{ID: "emp-1", FullName: "Alice Moreno"}
	// 36h week: a warning, no errors
	mock := &mockStore{
		employees: []model.Employee{employee},
		shifts: []model.Shift{
			{EmployeeID: employee.ID, Date: "2025-06-02", StartTime: "08:00", EndTime: "17:00"},
			{EmployeeID: employee.ID, Date: "2025-06-03", StartTime: "08:00", EndTime: "17:00"},
			{EmployeeID: employee.ID, Date: "2025-06-04", StartTime: "08:00", EndTime: "17:00"},
			{EmployeeID: employee.ID, Date: "2025-06-05", StartTime: "08:00", EndTime: "17:00"},
		},
	}

	result, err := PublishWeek(context.Background(), mock, zap.NewNop(), "2025-06-02", nil, false)
	require.ErrorIs(t, err, ErrWarningsNotAcknowledged)
	assert.False(t, result.Published)
	assert.Empty(t, mock.publishedWeeks)

	result, err = PublishWeek(context.Background(), mock, zap.NewNop(), "2025-06-02", nil, true)
	require.NoError(t, err)
	assert.True(t, result.Published)
	assert.Len(t, result.Validation.Warnings, 1)
}

func TestPublishWeek_PropagatesStoreError(t *testing.T) {
	employee := model.Employee{ID: "emp-1", FullName: "Alice Moreno"}
	mock := &mockStore{
		employees: []model.Employee{employee},
		shifts: []model.Shift{
			{EmployeeID: employee.ID, Date: "2025-06-02", StartTime: "10:00", EndTime: "16:00"},
		},
		publishErr: assert.AnError,
	}

	_, err := PublishWeek(context.Background(), mock, zap.NewNop(), "2025-06-02", nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish week shifts")
}
