package controllers

import (
	"net/http"

	"github.com/mateovidal/streamhaus-backend/api/responses"
	"github.com/mateovidal/streamhaus-backend/api/validators"
	"github.com/mateovidal/streamhaus-backend/internal/settings"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/logger"
)

// SettingsGet returns the platform configuration. An unconfigured platform
// responds 200 with a null payload so the frontend can render defaults.
func SettingsGet(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		dto, err := svc.Get(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// SettingsUpdate applies a partial change to the platform configuration.
func SettingsUpdate(svc settings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings service unavailable"))
			return
		}

		var body settings.UpdateSettingsInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Update(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
