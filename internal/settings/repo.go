package settings

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
)

// Repository persists the singleton settings row.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a settings repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Get loads the settings row. Returns gorm.ErrRecordNotFound when the row
// has never been written.
func (r *Repository) Get(ctx context.Context) (*models.PlatformSettings, error) {
	var row models.PlatformSettings
	if err := r.db.WithContext(ctx).First(&row, "id = ?", models.SettingsRowID).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Save upserts the settings row under its fixed identifier.
func (r *Repository) Save(ctx context.Context, row *models.PlatformSettings) error {
	row.ID = models.SettingsRowID
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(row).Error
}
