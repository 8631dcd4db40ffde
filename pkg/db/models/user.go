package models

import (
	"time"

	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

// User represents the canonical identity entity.
type User struct {
	ID           uint                `gorm:"primaryKey;autoIncrement"`
	Email        string              `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string              `gorm:"column:password_hash;not null"`
	Role         enums.UserRole      `gorm:"type:text;not null;default:user"`
	Subscription *types.Subscription `gorm:"type:jsonb;column:subscription"`
	IsActive     bool                `gorm:"column:is_active;not null;default:true"`
	LastLoginAt  *time.Time          `gorm:"column:last_login_at"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
