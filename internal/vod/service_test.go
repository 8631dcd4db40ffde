package vod

import (
	"context"
	"testing"
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/pagination"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

type stubRepo struct {
	entries    []models.VodEntry
	lastOpts   ListOptions
	createErr  error
	deleted    []string
	deleteRows int64
}

func (s *stubRepo) Create(_ context.Context, entry *models.VodEntry) (*models.VodEntry, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	entry.ID = uint(len(s.entries) + 1)
	s.entries = append(s.entries, *entry)
	return entry, nil
}

func (s *stubRepo) List(_ context.Context, opts ListOptions) ([]models.VodEntry, error) {
	s.lastOpts = opts
	out := make([]models.VodEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		if opts.PublicOnly && entry.Visibility != enums.VodVisibilityAll {
			continue
		}
		out = append(out, entry)
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (s *stubRepo) DeleteByFolder(_ context.Context, folder string) (int64, error) {
	s.deleted = append(s.deleted, folder)
	return s.deleteRows, nil
}

func newCatalogService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func catalogFixture() []models.VodEntry {
	return []models.VodEntry{
		{ID: 1, Title: "Open Match", Folder: "open-match", PublishedOn: "2026-01-10", Visibility: enums.VodVisibilityAll},
		{ID: 2, Title: "Members Replay", Folder: "members-replay", PublishedOn: "2026-01-11", Visibility: enums.VodVisibilitySubscribers},
	}
}

func activeSubscriber() *models.User {
	return &models.User{
		ID:   7,
		Role: enums.UserRoleUser,
		Subscription: &types.Subscription{
			Status:    enums.SubscriptionStatusActive,
			ExpiresAt: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		},
	}
}

func TestListAnonymousSeesPublicOnly(t *testing.T) {
	repo := &stubRepo{entries: catalogFixture()}
	svc := newCatalogService(t, repo)

	resp, err := svc.List(context.Background(), nil, pagination.Params{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !repo.lastOpts.PublicOnly {
		t.Fatalf("anonymous listing must be public-only")
	}
	if len(resp.Entries) != 1 || resp.Entries[0].Folder != "open-match" {
		t.Fatalf("unexpected entries %+v", resp.Entries)
	}
	if resp.NextCursor != "" {
		t.Fatalf("unpaged listing must not emit a cursor")
	}
}

func TestListActiveSubscriberSeesAll(t *testing.T) {
	repo := &stubRepo{entries: catalogFixture()}
	svc := newCatalogService(t, repo)

	resp, err := svc.List(context.Background(), activeSubscriber(), pagination.Params{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastOpts.PublicOnly {
		t.Fatalf("active subscriber must not be restricted")
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("expected full catalog, got %+v", resp.Entries)
	}
}

func TestListLapsedSubscriberRestricted(t *testing.T) {
	repo := &stubRepo{entries: catalogFixture()}
	svc := newCatalogService(t, repo)

	viewer := activeSubscriber()
	viewer.Subscription.ExpiresAt = time.Now().Add(-24 * time.Hour).Format(time.RFC3339)

	resp, err := svc.List(context.Background(), viewer, pagination.Params{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !repo.lastOpts.PublicOnly {
		t.Fatalf("lapsed subscriber must be public-only")
	}
	if len(resp.Entries) != 1 {
		t.Fatalf("unexpected entries %+v", resp.Entries)
	}
}

func TestListAdminSeesAll(t *testing.T) {
	repo := &stubRepo{entries: catalogFixture()}
	svc := newCatalogService(t, repo)

	resp, err := svc.List(context.Background(), &models.User{ID: 1, Role: enums.UserRoleAdmin}, pagination.Params{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("admin should see the full catalog, got %+v", resp.Entries)
	}
}

func TestListPagedEmitsCursor(t *testing.T) {
	now := time.Now()
	repo := &stubRepo{}
	for i := 0; i < 3; i++ {
		repo.entries = append(repo.entries, models.VodEntry{
			ID:         uint(i + 1),
			Title:      "Entry",
			Folder:     "entry",
			Visibility: enums.VodVisibilityAll,
			CreatedAt:  now.Add(-time.Duration(i) * time.Hour),
		})
	}
	svc := newCatalogService(t, repo)

	resp, err := svc.List(context.Background(), nil, pagination.Params{Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("expected page of 2, got %d", len(resp.Entries))
	}
	if resp.NextCursor == "" {
		t.Fatalf("expected next cursor on truncated page")
	}

	cursor, err := pagination.ParseCursor(resp.NextCursor)
	if err != nil || cursor == nil {
		t.Fatalf("cursor should round-trip: %v", err)
	}
	if cursor.ID != resp.Entries[len(resp.Entries)-1].ID {
		t.Fatalf("cursor id %d should match last entry %d", cursor.ID, resp.Entries[len(resp.Entries)-1].ID)
	}
}

func TestListInvalidCursor(t *testing.T) {
	svc := newCatalogService(t, &stubRepo{})

	_, err := svc.List(context.Background(), nil, pagination.Params{Cursor: "!!not-base64!!"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestCreateDefaultsVisibility(t *testing.T) {
	repo := &stubRepo{}
	svc := newCatalogService(t, repo)

	dto, err := svc.Create(context.Background(), CreateVodInput{
		Title:  "Finals",
		Folder: "finals-2026",
		Date:   "2026-02-01",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if dto.VisibleTo != enums.VodVisibilitySubscribers {
		t.Fatalf("expected default visibility, got %s", dto.VisibleTo)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newCatalogService(t, &stubRepo{})

	cases := []CreateVodInput{
		{Folder: "f", Date: "2026-02-01"},
		{Title: "t", Date: "2026-02-01"},
		{Title: "t", Folder: "f"},
		{Title: "t", Folder: "f", Date: "2026-02-01", VisibleTo: "everyone"},
	}
	for _, input := range cases {
		_, err := svc.Create(context.Background(), input)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("input %+v: expected VALIDATION_ERROR, got %v", input, err)
		}
	}
}

func TestRemoveUnknownFolderSucceeds(t *testing.T) {
	repo := &stubRepo{deleteRows: 0}
	svc := newCatalogService(t, repo)

	count, err := svc.Remove(context.Background(), "ghost-folder")
	if err != nil {
		t.Fatalf("remove must be a no-op success: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero rows, got %d", count)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "ghost-folder" {
		t.Fatalf("expected delete call for ghost-folder, got %v", repo.deleted)
	}
}
