// Package model contains the GORM mappings of the relational schema.
package model

import "time"

// UserModel mirrors the 'users' table. ID is the identity provider subject.
type UserModel struct {
	ID              string  `gorm:"type:varchar(255);primaryKey"`
	Email           *string `gorm:"type:varchar(255);uniqueIndex"`
	FirstName       *string `gorm:"type:varchar(255)"`
	LastName        *string `gorm:"type:varchar(255)"`
	ProfileImageURL *string `gorm:"column:profile_image_url;type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
