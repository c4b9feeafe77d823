package model

import "time"

// ExerciseModel mirrors the 'exercises' table. Instructions is stored as a JSON array.
type ExerciseModel struct {
	ID           string   `gorm:"type:varchar(255);primaryKey"`
	Name         string   `gorm:"type:varchar(255);not null"`
	Description  string   `gorm:"type:text;not null"`
	MuscleGroup  string   `gorm:"type:varchar(100);not null;index"`
	Equipment    string   `gorm:"type:varchar(100);not null"`
	Difficulty   string   `gorm:"type:varchar(32);not null;default:intermediate"`
	ImageURL     string   `gorm:"column:image_url;type:text;not null"`
	Instructions []string `gorm:"type:jsonb;serializer:json;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExerciseModel) TableName() string {
	return "exercises"
}
