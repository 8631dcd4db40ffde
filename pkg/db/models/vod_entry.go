package models

import (
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/enums"
)

// VodEntry describes one video-on-demand asset in the catalog. Folder is the
// storage directory served by the external HLS host and doubles as the
// business key for deletion.
type VodEntry struct {
	ID          uint                `gorm:"primaryKey;autoIncrement"`
	Title       string              `gorm:"type:text;not null"`
	Folder      string              `gorm:"type:text;not null;uniqueIndex"`
	PublishedOn string              `gorm:"column:published_on;not null"`
	Visibility  enums.VodVisibility `gorm:"type:text;not null;default:subscribers"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
