package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "sunday midnight is its own week start",
			now:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday night",
			now:  time.Date(2026, 3, 7, 23, 59, 59, 0, time.UTC),
			want: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "crosses a month boundary",
			now:  time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.now))
		})
	}
}

func TestBuildWeeklyProgress(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		v := now.Add(d)

		return &v
	}

	workouts := []*Workout{
		{Duration: 30, CompletedAt: at(-2 * time.Hour)},
		{Duration: 20, CompletedAt: at(-50 * time.Hour)},
		{Duration: 60, CompletedAt: at(-10 * 24 * time.Hour)},
		{Duration: 45, CompletedAt: at(time.Hour)},
		{Duration: 15},
		nil,
	}

	progress := BuildWeeklyProgress(now, workouts, 4)

	require.Len(t, progress.Days, 7)
	assert.Equal(t, 50, progress.TotalMinutes)
	assert.Equal(t, 2, progress.CompletedWorkouts)
	assert.Equal(t, 2, progress.ActiveDays)
	assert.Equal(t, 4, progress.PlannedWorkouts)
	assert.Equal(t, 30, progress.Days[3].Minutes)
	assert.Equal(t, 20, progress.Days[1].Minutes)
	assert.Equal(t, "DOM", progress.Days[0].Label)
	assert.Equal(t, "6", progress.Days[6].Day)
	assert.True(t, progress.Days[3].IsToday)
	assert.False(t, progress.Days[1].IsToday)
}
