// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in, register devices and keep progress.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Name         string    `json:"name"`       // Display name.
	Email        string    `json:"email"`      // Login identifier, unique.
	PasswordHash string    `json:"-"`          // bcrypt hash of the password.
	Role         Role      `json:"role"`       // Authorization role carried in access tokens.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this user account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification to this user's data.
}
