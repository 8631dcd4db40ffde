package models

import (
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

// SettingsRowID is the well-known key of the single logical settings row.
const SettingsRowID uint = 1

// PlatformSettings is the singleton configuration record for stream endpoints
// and the weekly broadcast schedule.
type PlatformSettings struct {
	ID            uint           `gorm:"primaryKey"`
	LiveStreamURL string         `gorm:"column:live_stream_url;not null;default:''"`
	VodBaseURL    string         `gorm:"column:vod_base_url;not null;default:''"`
	Schedule      types.Schedule `gorm:"type:jsonb;column:schedule;not null;default:'{}'"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
