package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mateovidal/streamhaus-backend/pkg/config"
	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

func newSettingsService(t *testing.T) Service {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.PlatformSettings{}))

	svc, err := NewService(ServiceParams{
		Repo: NewRepository(conn),
		Defaults: config.StreamConfig{
			DefaultLiveStreamURL: "https://stream.example.com/live.m3u8",
			DefaultVodBaseURL:    "https://stream.example.com/vod",
		},
	})
	require.NoError(t, err)
	return svc
}

func strPtr(s string) *string { return &s }

func TestGetUnconfiguredReturnsNil(t *testing.T) {
	svc := newSettingsService(t)

	dto, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Nil(t, dto, "unconfigured settings must read as nil, not an error")
}

func TestUpdateCreatesRowWithDefaults(t *testing.T) {
	svc := newSettingsService(t)

	dto, err := svc.Update(context.Background(), UpdateSettingsInput{
		Schedule: &types.Schedule{"monday": "19:00 Warmup"},
	})
	require.NoError(t, err)
	require.Equal(t, "https://stream.example.com/live.m3u8", dto.LiveStreamURL)
	require.Equal(t, "https://stream.example.com/vod", dto.VodBaseURL)
	require.Equal(t, "19:00 Warmup", dto.Schedule["monday"])

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, dto.LiveStreamURL, got.LiveStreamURL)
}

func TestUpdatePartialMergeKeepsOtherFields(t *testing.T) {
	svc := newSettingsService(t)

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		LiveStreamURL: strPtr("https://a.example.com/live.m3u8"),
		VodBaseURL:    strPtr("https://a.example.com/vod"),
		Schedule:      &types.Schedule{"friday": "20:00 Match"},
	})
	require.NoError(t, err)

	dto, err := svc.Update(context.Background(), UpdateSettingsInput{
		LiveStreamURL: strPtr("https://b.example.com/live.m3u8"),
	})
	require.NoError(t, err)
	require.Equal(t, "https://b.example.com/live.m3u8", dto.LiveStreamURL)
	require.Equal(t, "https://a.example.com/vod", dto.VodBaseURL)
	require.Equal(t, "20:00 Match", dto.Schedule["friday"])
}

func TestUpdateReplacesScheduleWholesale(t *testing.T) {
	svc := newSettingsService(t)

	_, err := svc.Update(context.Background(), UpdateSettingsInput{
		Schedule: &types.Schedule{"monday": "19:00", "tuesday": "20:00"},
	})
	require.NoError(t, err)

	dto, err := svc.Update(context.Background(), UpdateSettingsInput{
		Schedule: &types.Schedule{"sunday": "18:00"},
	})
	require.NoError(t, err)
	require.Len(t, dto.Schedule, 1)
	require.Equal(t, "18:00", dto.Schedule["sunday"])
}
