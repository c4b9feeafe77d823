// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the identity record maintained from identity provider claims on each login.
type User struct {
	ID              string    `json:"id"`              // Durable external identity (the provider's subject).
	Email           *string   `json:"email"`           // Unique when present.
	FirstName       *string   `json:"firstName"`       // Given name from the provider.
	LastName        *string   `json:"lastName"`        // Family name from the provider.
	ProfileImageURL *string   `json:"profileImageUrl"` // Avatar URL from the provider.
	CreatedAt       time.Time `json:"createdAt"`       // First login.
	UpdatedAt       time.Time `json:"updatedAt"`       // Last claims refresh.
}
