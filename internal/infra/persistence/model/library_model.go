package model

import (
	"time"

	"github.com/google/uuid"
)

// ProgressModel mirrors the 'progress' table, one row per (user, video).
type ProgressModel struct {
	ID               uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_video,priority:1"`
	VideoID          string             `gorm:"type:varchar(64);not null;uniqueIndex:idx_progress_user_video,priority:2"`
	PositionSeconds  int                `gorm:"not null;default:0"`
	CompletedPercent float64            `gorm:"not null;default:0;check:completed_percent >= 0 AND completed_percent <= 100"`
	Synced           bool               `gorm:"not null;default:true"`
	Video            *CatalogEntryModel `gorm:"foreignKey:VideoID;references:VideoID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProgressModel) TableName() string {
	return "progress"
}

// FavoriteModel mirrors the 'favorites' table, one row per (user, video).
type FavoriteModel struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_video,priority:1"`
	VideoID   string             `gorm:"type:varchar(64);not null;uniqueIndex:idx_favorites_user_video,priority:2"`
	Synced    bool               `gorm:"not null;default:true"`
	Video     *CatalogEntryModel `gorm:"foreignKey:VideoID;references:VideoID"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
