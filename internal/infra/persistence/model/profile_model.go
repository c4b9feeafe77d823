package model

import "time"

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id.
type UserProfileModel struct {
	UserID       string   `gorm:"type:varchar(255);primaryKey"`
	Height       *int
	Weight       *int
	Goal         *string  `gorm:"type:varchar(64)"`
	TrainingDays []string `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
