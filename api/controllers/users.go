package controllers

import (
	"net/http"

	"github.com/mateovidal/streamhaus-backend/api/responses"
	"github.com/mateovidal/streamhaus-backend/api/validators"
	"github.com/mateovidal/streamhaus-backend/internal/users"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/logger"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

type provisionUserRequest struct {
	Email        string              `json:"email" validate:"required,email"`
	Password     string              `json:"password" validate:"omitempty,min=12"`
	Role         string              `json:"role" validate:"omitempty,oneof=guest user admin"`
	Subscription *types.Subscription `json:"subscription"`
}

type provisionUserResponse struct {
	User *users.UserDTO `json:"user"`
	// TempPassword is only set when the request omitted a password; it is
	// shown once and never stored in the clear.
	TempPassword string `json:"temp_password,omitempty"`
}

// ProvisionUser creates an account on behalf of an administrator.
func ProvisionUser(svc users.ProvisionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		var body provisionUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, tempPassword, err := svc.Provision(r.Context(), users.ProvisionInput{
			Email:        body.Email,
			Password:     body.Password,
			Role:         enums.UserRole(body.Role),
			Subscription: body.Subscription,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, provisionUserResponse{
			User:         dto,
			TempPassword: tempPassword,
		})
	}
}
