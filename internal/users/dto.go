package users

import (
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

// UserDTO is the transport shape that omits sensitive credentials. The
// password hash never leaves the service layer.
type UserDTO struct {
	ID           uint                `json:"id"`
	Email        string              `json:"email"`
	Role         enums.UserRole      `json:"role"`
	Subscription *types.Subscription `json:"subscription,omitempty"`
	IsActive     bool                `json:"is_active"`
	LastLoginAt  *time.Time          `json:"last_login_at,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
	Role         enums.UserRole
	Subscription *types.Subscription
	IsActive     *bool
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	var sub *types.Subscription
	if u.Subscription != nil {
		copied := *u.Subscription
		sub = &copied
	}

	return &UserDTO{
		ID:           u.ID,
		Email:        u.Email,
		Role:         u.Role,
		Subscription: sub,
		IsActive:     u.IsActive,
		LastLoginAt:  u.LastLoginAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	role := c.Role
	if role == "" {
		role = enums.DefaultUserRole
	}

	return &models.User{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Role:         role,
		Subscription: c.Subscription,
		IsActive:     isActive,
	}
}
