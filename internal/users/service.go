package users

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mateovidal/streamhaus-backend/pkg/config"
	"github.com/mateovidal/streamhaus-backend/pkg/db"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/security"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

const tempPasswordLength = 16

// ProvisionInput captures an administrative account-creation request. When
// Password is empty a temporary credential is generated and handed back to
// the admin out-of-band.
type ProvisionInput struct {
	Email        string
	Password     string
	Role         enums.UserRole
	Subscription *types.Subscription
}

// ProvisionService creates identities on behalf of an administrator. There is
// no self-service registration; this is the only provisioning path.
type ProvisionService interface {
	Provision(ctx context.Context, input ProvisionInput) (*UserDTO, string, error)
}

// ProvisionServiceParams names the dependencies for the provisioning flow.
type ProvisionServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type provisionService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewProvisionService builds a user provisioning service.
func NewProvisionService(params ProvisionServiceParams) (ProvisionService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &provisionService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *provisionService) Provision(ctx context.Context, input ProvisionInput) (*UserDTO, string, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "valid email is required")
	}

	role := input.Role
	if role == "" {
		role = enums.DefaultUserRole
	}
	if !role.IsValid() {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	if input.Subscription != nil && !input.Subscription.Status.IsValid() {
		return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "invalid subscription status")
	}

	password := input.Password
	tempPassword := ""
	if password == "" {
		generated, err := security.GenerateTempPassword(tempPasswordLength)
		if err != nil {
			return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate temp password")
		}
		password = generated
		tempPassword = generated
	}

	passwordHash, err := security.HashPassword(password, s.passwordCfg)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created *UserDTO
	txErr := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		user, err := repo.Create(ctx, CreateUserDTO{
			Email:        email,
			PasswordHash: passwordHash,
			Role:         role,
			Subscription: input.Subscription,
		})
		if err != nil {
			if db.IsUniqueViolation(err, "idx_users_email") {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		created = FromModel(user)
		return nil
	})
	if txErr != nil {
		return nil, "", txErr
	}

	return created, tempPassword, nil
}
