package vod

import (
	"context"
	"strings"
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/access"
	"github.com/mateovidal/streamhaus-backend/pkg/db"
	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/logger"
	"github.com/mateovidal/streamhaus-backend/pkg/pagination"
)

type catalogRepo interface {
	Create(ctx context.Context, entry *models.VodEntry) (*models.VodEntry, error)
	List(ctx context.Context, opts ListOptions) ([]models.VodEntry, error)
	DeleteByFolder(ctx context.Context, folder string) (int64, error)
}

// Service owns the catalog use-cases: entitlement-filtered listing for
// viewers and create/remove for admins.
type Service interface {
	List(ctx context.Context, viewer *models.User, params pagination.Params) (*ListResponse, error)
	Create(ctx context.Context, input CreateVodInput) (*VodEntryDTO, error)
	Remove(ctx context.Context, folder string) (int64, error)
}

// ServiceParams names the dependencies for the catalog service.
type ServiceParams struct {
	Repo   catalogRepo
	Logger *logger.Logger
	Now    func() time.Time
}

type service struct {
	repo catalogRepo
	logg *logger.Logger
	now  func() time.Time
}

// NewService builds the catalog service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog repo required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, logg: params.Logger, now: now}, nil
}

// List returns the catalog the viewer is entitled to see. Anonymous callers
// and lapsed subscribers get only entries visible to all; admins and active
// subscribers get everything. Without pagination params the whole catalog
// comes back in one page.
func (s *service) List(ctx context.Context, viewer *models.User, params pagination.Params) (*ListResponse, error) {
	publicOnly := !access.IsAdmin(viewer) && !access.HasActiveSubscription(viewer, s.now())

	paged := params.Limit > 0 || strings.TrimSpace(params.Cursor) != ""

	opts := ListOptions{PublicOnly: publicOnly}
	if paged {
		cursor, err := pagination.ParseCursor(params.Cursor)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
		}
		opts.Cursor = cursor
		opts.Limit = pagination.LimitWithBuffer(params.Limit)
	}

	entries, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list catalog")
	}

	resp := &ListResponse{}
	if paged {
		pageSize := pagination.NormalizeLimit(params.Limit)
		if len(entries) > pageSize {
			entries = entries[:pageSize]
			last := entries[len(entries)-1]
			resp.NextCursor = pagination.EncodeCursor(pagination.Cursor{
				CreatedAt: last.CreatedAt,
				ID:        last.ID,
			})
		}
	}
	resp.Entries = fromModels(entries)
	return resp, nil
}

func (s *service) Create(ctx context.Context, input CreateVodInput) (*VodEntryDTO, error) {
	title := strings.TrimSpace(input.Title)
	folder := strings.TrimSpace(input.Folder)
	date := strings.TrimSpace(input.Date)
	if title == "" || folder == "" || date == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title, folder and date are required")
	}

	visibility := enums.DefaultVodVisibility
	if input.VisibleTo != "" {
		parsed, err := enums.ParseVodVisibility(input.VisibleTo)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid visibility")
		}
		visibility = parsed
	}

	entry, err := s.repo.Create(ctx, &models.VodEntry{
		Title:       title,
		Folder:      folder,
		PublishedOn: date,
		Visibility:  visibility,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "idx_vod_entries_folder") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "folder already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create catalog entry")
	}

	dto := fromModel(*entry)
	return &dto, nil
}

// Remove deletes the entry registered under folder. Deleting a folder that
// was never registered succeeds with a zero count; the external storage is
// untouched either way.
func (s *service) Remove(ctx context.Context, folder string) (int64, error) {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "folder is required")
	}

	count, err := s.repo.DeleteByFolder(ctx, folder)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete catalog entry")
	}
	if count == 0 && s.logg != nil {
		s.logg.Warn(ctx, "delete requested for unregistered folder")
	}
	return count, nil
}
