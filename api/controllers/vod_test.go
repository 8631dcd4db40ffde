package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/mateovidal/streamhaus-backend/api/middleware"
	"github.com/mateovidal/streamhaus-backend/internal/vod"
	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/pagination"
)

type stubVodService struct {
	listResp   *vod.ListResponse
	lastViewer *models.User
	createResp *vod.VodEntryDTO
	removed    []string
	removeRows int64
	err        error
}

func (s *stubVodService) List(_ context.Context, viewer *models.User, _ pagination.Params) (*vod.ListResponse, error) {
	s.lastViewer = viewer
	return s.listResp, s.err
}

func (s *stubVodService) Create(_ context.Context, _ vod.CreateVodInput) (*vod.VodEntryDTO, error) {
	return s.createResp, s.err
}

func (s *stubVodService) Remove(_ context.Context, folder string) (int64, error) {
	s.removed = append(s.removed, folder)
	return s.removeRows, s.err
}

type stubViewerLoader struct {
	user *models.User
	err  error
}

func (s stubViewerLoader) FindByID(_ context.Context, _ uint) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.user == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func TestVodListAnonymous(t *testing.T) {
	svc := &stubVodService{listResp: &vod.ListResponse{Entries: []vod.VodEntryDTO{
		{ID: 1, Title: "Open Match", Folder: "open-match", Date: "2026-01-10", VisibleTo: enums.VodVisibilityAll},
	}}}

	handler := VodList(svc, stubViewerLoader{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/vod", nil)
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastViewer != nil {
		t.Fatalf("anonymous request must pass a nil viewer")
	}

	var envelope struct {
		Data vod.ListResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(envelope.Data.Entries) != 1 || envelope.Data.Entries[0].Folder != "open-match" {
		t.Fatalf("unexpected entries %+v", envelope.Data.Entries)
	}
}

func TestVodListAuthenticatedLoadsViewer(t *testing.T) {
	viewer := &models.User{ID: 7, Role: enums.UserRoleUser}
	svc := &stubVodService{listResp: &vod.ListResponse{}}

	handler := VodList(svc, stubViewerLoader{user: viewer}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/vod", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), 7, "user"))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastViewer == nil || svc.lastViewer.ID != 7 {
		t.Fatalf("expected viewer 7, got %+v", svc.lastViewer)
	}
}

func TestVodListDeletedAccount(t *testing.T) {
	svc := &stubVodService{listResp: &vod.ListResponse{}}

	handler := VodList(svc, stubViewerLoader{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/vod", nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), 42, "user"))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestVodCreateSuccess(t *testing.T) {
	svc := &stubVodService{createResp: &vod.VodEntryDTO{
		ID: 1, Title: "Finals", Folder: "finals-2026", Date: "2026-02-01", VisibleTo: enums.VodVisibilitySubscribers,
	}}

	handler := VodCreate(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/vod", bytes.NewReader([]byte(`{"title":"Finals","folder":"finals-2026","date":"2026-02-01"}`)))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestVodCreateConflict(t *testing.T) {
	svc := &stubVodService{err: pkgerrors.New(pkgerrors.CodeConflict, "folder already registered")}

	handler := VodCreate(svc, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/vod", bytes.NewReader([]byte(`{"title":"Finals","folder":"finals-2026","date":"2026-02-01"}`)))
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}

func TestVodDeletePassesFolderParam(t *testing.T) {
	svc := &stubVodService{removeRows: 1}

	r := chi.NewRouter()
	r.Delete("/api/vod/{folder}", VodDelete(svc, nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/vod/finals-2026", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(svc.removed) != 1 || svc.removed[0] != "finals-2026" {
		t.Fatalf("expected remove call for finals-2026, got %v", svc.removed)
	}
}
