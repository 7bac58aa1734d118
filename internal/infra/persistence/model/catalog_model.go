package model

import "time"

// CatalogEntryModel is the GORM-specific struct for the 'catalog_entries' table.
// Rows are keyed on the identifier assigned by the video directory.
type CatalogEntryModel struct {
	VideoID      string    `gorm:"type:varchar(64);primaryKey"`
	Title        string    `gorm:"type:text;not null"`
	Description  string    `gorm:"type:text"`
	ThumbnailURL string    `gorm:"type:text"`
	ChannelID    string    `gorm:"type:varchar(64);not null;index:idx_catalog_channel_published,priority:1"`
	ChannelTitle string    `gorm:"type:text"`
	PublishedAt  time.Time `gorm:"not null;index:idx_catalog_channel_published,priority:2,sort:desc"`
	Duration     int       `gorm:"not null;default:0"`
	CachedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CatalogEntryModel) TableName() string {
	return "catalog_entries"
}
