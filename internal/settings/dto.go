package settings

import (
	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

// SettingsDTO is the public shape of the platform configuration.
type SettingsDTO struct {
	LiveStreamURL string         `json:"live_stream_url"`
	VodBaseURL    string         `json:"vod_base_url"`
	Schedule      types.Schedule `json:"schedule"`
}

// UpdateSettingsInput carries a partial settings update. Nil fields keep
// their stored values.
type UpdateSettingsInput struct {
	LiveStreamURL *string         `json:"live_stream_url" validate:"omitempty,url"`
	VodBaseURL    *string         `json:"vod_base_url" validate:"omitempty,url"`
	Schedule      *types.Schedule `json:"schedule"`
}

func fromModel(m *models.PlatformSettings) *SettingsDTO {
	if m == nil {
		return nil
	}

	schedule := types.Schedule{}
	for k, v := range m.Schedule {
		schedule[k] = v
	}

	return &SettingsDTO{
		LiveStreamURL: m.LiveStreamURL,
		VodBaseURL:    m.VodBaseURL,
		Schedule:      schedule,
	}
}
