package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/mateovidal/streamhaus-backend/api/middleware"
	"github.com/mateovidal/streamhaus-backend/api/responses"
	"github.com/mateovidal/streamhaus-backend/api/validators"
	"github.com/mateovidal/streamhaus-backend/internal/vod"
	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/logger"
	"github.com/mateovidal/streamhaus-backend/pkg/pagination"
)

type viewerLoader interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

// currentViewer resolves the authenticated user row, or nil for anonymous
// requests. A token pointing at a deleted account reads as unauthorized.
func currentViewer(r *http.Request, loader viewerLoader) (*models.User, error) {
	ctx := r.Context()
	if !middleware.IsAuthenticated(ctx) {
		return nil, nil
	}

	userID := middleware.UserIDFromContext(ctx)
	if userID == 0 || loader == nil {
		return nil, nil
	}

	user, err := loader.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load viewer")
	}
	return user, nil
}

// VodList returns the catalog filtered to what the caller may watch.
func VodList(svc vod.Service, loader viewerLoader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		viewer, err := currentViewer(r, loader)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.List(r.Context(), viewer, pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// VodCreate registers an uploaded recording in the catalog.
func VodCreate(svc vod.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		var body vod.CreateVodInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Create(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// VodDelete unregisters the entry stored under the folder path parameter.
func VodDelete(svc vod.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		folder := validators.SanitizeString(chi.URLParam(r, "folder"), 255)
		count, err := svc.Remove(r.Context(), folder)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"deleted": count})
	}
}
