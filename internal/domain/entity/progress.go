package entity

import "time"

// WeekdayLabels are the abbreviations shown on the weekly summary, Sunday first.
var WeekdayLabels = [7]string{"DOM", "SEG", "TER", "QUA", "QUI", "SEX", "SAB"}

// DailyProgress is the training time of one weekday.
type DailyProgress struct {
	Day     string `json:"day"`
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
	IsToday bool   `json:"isToday"`
}

// WeeklyProgress summarizes completed workouts of the current week.
type WeeklyProgress struct {
	WeekStart         time.Time       `json:"weekStart"`
	Days              []DailyProgress `json:"days"`
	TotalMinutes      int             `json:"totalMinutes"`
	ActiveDays        int             `json:"activeDays"`
	CompletedWorkouts int             `json:"completedWorkouts"`
	PlannedWorkouts   int             `json:"plannedWorkouts"`
}

// WeekStart returns Sunday 00:00 of the week containing now, in now's location.
func WeekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	return midnight.AddDate(0, 0, -int(now.Weekday()))
}

// BuildWeeklyProgress buckets the completed workouts by weekday of completion.
// Workouts completed outside [WeekStart(now), now] are ignored.
func BuildWeeklyProgress(now time.Time, completed []*Workout, planned int) *WeeklyProgress {
	start := WeekStart(now)
	progress := &WeeklyProgress{
		WeekStart:       start,
		Days:            make([]DailyProgress, 7),
		PlannedWorkouts: planned,
	}

	today := int(now.Weekday())
	for i := range progress.Days {
		progress.Days[i] = DailyProgress{
			Day:     string(rune('0' + i)),
			Label:   WeekdayLabels[i],
			IsToday: i == today,
		}
	}

	for _, w := range completed {
		if w == nil || w.CompletedAt == nil {
			continue
		}

		at := w.CompletedAt.In(now.Location())
		if at.Before(start) || at.After(now) {
			continue
		}

		progress.Days[int(at.Weekday())].Minutes += w.Duration
		progress.TotalMinutes += w.Duration
		progress.CompletedWorkouts++
	}

	for _, d := range progress.Days {
		if d.Minutes > 0 {
			progress.ActiveDays++
		}
	}

	return progress
}
