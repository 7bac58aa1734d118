// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the device class a push token was issued for.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// IsValid reports whether p is one of the supported device classes.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformAndroid, PlatformIOS, PlatformWeb:
		return true
	default:
		return false
	}
}

// DeviceToken is a push-capable device registration. The token is globally unique and
// owned by exactly one user at a time.
type DeviceToken struct {
	ID        uuid.UUID `json:"id"`         // Surrogate identifier of the registration row.
	UserID    uuid.UUID `json:"user_id"`    // Current owner of the token.
	Token     string    `json:"token"`      // Provider-issued registration token; natural key.
	Platform  Platform  `json:"platform"`   // Device class (android, ios, web).
	CreatedAt time.Time `json:"created_at"` // Timestamp of the first registration.
	UpdatedAt time.Time `json:"updated_at"` // Timestamp of the last reassignment.
}
