package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutModel mirrors the 'workouts' table.
type WorkoutModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      string     `gorm:"type:varchar(255);not null;index"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description *string    `gorm:"type:text"`
	Duration    int        `gorm:"not null;default:30"`
	Level       string     `gorm:"type:varchar(32);not null;default:iniciante"`
	ImageURL    *string    `gorm:"column:image_url;type:text"`
	Progress    int        `gorm:"not null;default:0"`
	IsFavorite  bool       `gorm:"not null;default:false"`
	IsCompleted bool       `gorm:"not null;default:false"`
	CompletedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Exercises []WorkoutExerciseModel `gorm:"foreignKey:WorkoutID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "workouts"
}

// WorkoutExerciseModel mirrors the 'workout_exercises' table.
type WorkoutExerciseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkoutID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_workout_exercises_position"`
	ExerciseID  string    `gorm:"type:varchar(255);not null"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Sets        int       `gorm:"not null;default:3"`
	Reps        int       `gorm:"not null;default:12"`
	RestTime    int       `gorm:"not null;default:60"`
	Notes       *string   `gorm:"type:text"`
	Position    int       `gorm:"column:order;not null;uniqueIndex:idx_workout_exercises_position"`
	IsCompleted bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkoutExerciseModel) TableName() string {
	return "workout_exercises"
}
