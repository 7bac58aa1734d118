package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     *uuid.UUID        `gorm:"type:uuid;index:idx_notifications_user_received,priority:1"`
	Title      string            `gorm:"type:text;not null"`
	Body       string            `gorm:"type:text;not null"`
	Metadata   map[string]string `gorm:"type:jsonb;serializer:json"`
	Sent       bool              `gorm:"not null;default:false"`
	IsRead     bool              `gorm:"not null;default:false"`
	IsDeleted  bool              `gorm:"not null;default:false"`
	ReceivedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_notifications_user_received,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationJobModel is the GORM-specific struct for the 'notification_jobs' table.
// It tracks delivery attempts of queued notifications.
type NotificationJobModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	NotificationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Attempts       int       `gorm:"not null;default:0"`
	LastError      string    `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationJobModel) TableName() string {
	return "notification_jobs"
}
