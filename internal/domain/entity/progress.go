package entity

import (
	"time"

	"github.com/google/uuid"
)

// Progress is a user's playback position in a video, one row per (user, video).
type Progress struct {
	ID               uuid.UUID     `json:"id"`
	UserID           uuid.UUID     `json:"user_id"`
	VideoID          string        `json:"video_id"`
	PositionSeconds  int           `json:"position_seconds"`
	CompletedPercent float64       `json:"completed_percent"`
	Synced           bool          `json:"synced"`
	Video            *CatalogEntry `json:"video,omitempty"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// Favorite marks a video as favorited by a user, one row per (user, video).
type Favorite struct {
	ID        uuid.UUID     `json:"id"`
	UserID    uuid.UUID     `json:"user_id"`
	VideoID   string        `json:"video_id"`
	Synced    bool          `json:"synced"`
	Video     *CatalogEntry `json:"video,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
