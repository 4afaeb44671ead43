// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and profile data for blog authorship.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey" json:"id"`

	// FirstName is the user's given name.
	FirstName string `gorm:"size:255;not null" json:"firstName"`

	// LastName is the user's family name.
	LastName string `gorm:"size:255;not null" json:"lastName"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords. The hash is part of the
	// serialized record, matching the wire format of the existing API.
	Password string `gorm:"size:255;not null" json:"password"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
