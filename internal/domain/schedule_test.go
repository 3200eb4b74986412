package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeeklySchedule(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	require.Len(t, schedule, 7)
	require.NoError(t, schedule.Validate())

	for _, day := range schedule {
		switch day.Day {
		case "Saturday", "Sunday":
			require.Len(t, day.Slots, 1)
			assert.Equal(t, "10:00", day.Slots[0].StartTime)
			assert.Equal(t, "14:00", day.Slots[0].EndTime)
		default:
			require.Len(t, day.Slots, 2)
			assert.Equal(t, "09:00", day.Slots[0].StartTime)
			assert.Equal(t, "12:00", day.Slots[0].EndTime)
			assert.Equal(t, "13:00", day.Slots[1].StartTime)
			assert.Equal(t, "17:00", day.Slots[1].EndTime)
		}
		for _, slot := range day.Slots {
			assert.True(t, slot.IsAvailable)
		}
	}
}

func TestSetSlotStartForcesAvailability(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	// mark the weekend slot unavailable, then edit its start time
	for i := range schedule {
		if schedule[i].Day == "Saturday" {
			schedule[i].Slots[0].IsAvailable = false
		}
	}

	require.NoError(t, schedule.SetSlotStart("Saturday", 0, "11:00"))

	for _, day := range schedule {
		if day.Day != "Saturday" {
			continue
		}
		assert.Equal(t, "11:00", day.Slots[0].StartTime)
		assert.Equal(t, "14:00", day.Slots[0].EndTime)
		assert.True(t, day.Slots[0].IsAvailable)
	}
}

func TestSetSlotEndForcesAvailability(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	require.NoError(t, schedule.SetSlotEnd("Monday", 1, "18:00"))

	for _, day := range schedule {
		if day.Day != "Monday" {
			continue
		}
		assert.Equal(t, "13:00", day.Slots[1].StartTime)
		assert.Equal(t, "18:00", day.Slots[1].EndTime)
		assert.True(t, day.Slots[1].IsAvailable)
	}
}

func TestAddSlotAppendsDefault(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	require.NoError(t, schedule.AddSlot("Sunday"))

	for _, day := range schedule {
		if day.Day != "Sunday" {
			continue
		}
		require.Len(t, day.Slots, 2)
		assert.Equal(t, TimeSlot{StartTime: "09:00", EndTime: "17:00", IsAvailable: true}, day.Slots[1])
	}
}

func TestRemoveSlot(t *testing.T) {
	schedule := DefaultWeeklySchedule()

	require.NoError(t, schedule.RemoveSlot("Monday", 0))
	for _, day := range schedule {
		if day.Day == "Monday" {
			require.Len(t, day.Slots, 1)
			assert.Equal(t, "13:00", day.Slots[0].StartTime)
		}
	}

	// a day never drops to zero slots
	err := schedule.RemoveSlot("Monday", 0)
	assert.ErrorIs(t, err, ErrLastSlot)

	assert.ErrorIs(t, schedule.RemoveSlot("Noday", 0), ErrDayNotFound)
	assert.ErrorIs(t, schedule.RemoveSlot("Tuesday", 9), ErrSlotOutOfRange)
}

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(WeeklySchedule) WeeklySchedule
		wantErr error
	}{
		{
			name:    "default is valid",
			mutate:  func(s WeeklySchedule) WeeklySchedule { return s },
			wantErr: nil,
		},
		{
			name: "missing day",
			mutate: func(s WeeklySchedule) WeeklySchedule {
				return s[:6]
			},
			wantErr: ErrMalformedWeek,
		},
		{
			name: "duplicate day",
			mutate: func(s WeeklySchedule) WeeklySchedule {
				s[1] = s[0]
				return s
			},
			wantErr: ErrMalformedWeek,
		},
		{
			name: "slot missing end time",
			mutate: func(s WeeklySchedule) WeeklySchedule {
				s[2].Slots[0].EndTime = ""
				return s
			},
			wantErr: ErrIncompleteSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := tt.mutate(DefaultWeeklySchedule())
			err := schedule.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
