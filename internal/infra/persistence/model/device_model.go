package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
// A token is unique across all users; reassignment moves the row to the new owner.
type DeviceTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:text;not null;uniqueIndex"`
	Platform  string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
