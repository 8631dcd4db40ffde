package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mateovidal/streamhaus-backend/pkg/config"
	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

type settingsRepo interface {
	Get(ctx context.Context) (*models.PlatformSettings, error)
	Save(ctx context.Context, row *models.PlatformSettings) error
}

// Service reads and writes the singleton platform configuration.
type Service interface {
	Get(ctx context.Context) (*SettingsDTO, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*SettingsDTO, error)
}

// ServiceParams names the dependencies for the settings service.
type ServiceParams struct {
	Repo     settingsRepo
	Defaults config.StreamConfig
}

type service struct {
	repo     settingsRepo
	defaults config.StreamConfig
}

// NewService builds the settings service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "settings repo required")
	}
	return &service{repo: params.Repo, defaults: params.Defaults}, nil
}

// Get returns the stored settings, or nil when nothing has been configured
// yet. An unconfigured platform is not an error.
func (s *service) Get(ctx context.Context) (*SettingsDTO, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load settings")
	}
	return fromModel(row), nil
}

// Update applies a partial settings change. The row is created on first
// write, seeded from the configured stream defaults; omitted fields keep
// their current values.
func (s *service) Update(ctx context.Context, input UpdateSettingsInput) (*SettingsDTO, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load settings")
		}
		row = &models.PlatformSettings{
			ID:            models.SettingsRowID,
			LiveStreamURL: s.defaults.DefaultLiveStreamURL,
			VodBaseURL:    s.defaults.DefaultVodBaseURL,
			Schedule:      types.Schedule{},
		}
	}

	if input.LiveStreamURL != nil {
		row.LiveStreamURL = *input.LiveStreamURL
	}
	if input.VodBaseURL != nil {
		row.VodBaseURL = *input.VodBaseURL
	}
	if input.Schedule != nil {
		row.Schedule = *input.Schedule
	}
	if row.Schedule == nil {
		row.Schedule = types.Schedule{}
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save settings")
	}
	return fromModel(row), nil
}
