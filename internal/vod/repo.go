package vod

import (
	"context"

	"gorm.io/gorm"

	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	"github.com/mateovidal/streamhaus-backend/pkg/pagination"
)

// Repository exposes catalog persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a vod repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListOptions narrows and pages a catalog listing. A zero Limit returns the
// full catalog in one response.
type ListOptions struct {
	PublicOnly bool
	Cursor     *pagination.Cursor
	Limit      int
}

// Create inserts a catalog entry and returns the persisted model.
func (r *Repository) Create(ctx context.Context, entry *models.VodEntry) (*models.VodEntry, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns catalog entries newest-first. Keyset pagination walks the
// (created_at, id) ordering when a cursor is supplied.
func (r *Repository) List(ctx context.Context, opts ListOptions) ([]models.VodEntry, error) {
	query := r.db.WithContext(ctx).
		Model(&models.VodEntry{}).
		Order("created_at DESC, id DESC")

	if opts.PublicOnly {
		query = query.Where("visibility = ?", enums.VodVisibilityAll)
	}

	if opts.Cursor != nil {
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			opts.Cursor.CreatedAt, opts.Cursor.CreatedAt, opts.Cursor.ID,
		)
	}

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	var entries []models.VodEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByFolder retrieves a single entry by its storage folder.
func (r *Repository) FindByFolder(ctx context.Context, folder string) (*models.VodEntry, error) {
	var entry models.VodEntry
	if err := r.db.WithContext(ctx).Where("folder = ?", folder).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteByFolder removes every entry whose folder matches and reports how
// many rows went away. Zero is not an error.
func (r *Repository) DeleteByFolder(ctx context.Context, folder string) (int64, error) {
	result := r.db.WithContext(ctx).Where("folder = ?", folder).Delete(&models.VodEntry{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
