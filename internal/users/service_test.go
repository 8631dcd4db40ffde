package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mateovidal/streamhaus-backend/pkg/config"
	"github.com/mateovidal/streamhaus-backend/pkg/db"
	"github.com/mateovidal/streamhaus-backend/pkg/db/models"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	pkgerrors "github.com/mateovidal/streamhaus-backend/pkg/errors"
	"github.com/mateovidal/streamhaus-backend/pkg/security"
	"github.com/mateovidal/streamhaus-backend/pkg/types"
)

func newTestDB(t *testing.T) *db.Client {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}))
	return db.NewWithConn(conn)
}

func newTestProvisionService(t *testing.T, client *db.Client) ProvisionService {
	t.Helper()
	svc, err := NewProvisionService(ProvisionServiceParams{
		DB:             client,
		PasswordConfig: config.PasswordConfig{BcryptCost: 4},
	})
	require.NoError(t, err)
	return svc
}

func TestProvisionWithExplicitPassword(t *testing.T) {
	client := newTestDB(t)
	svc := newTestProvisionService(t, client)

	dto, temp, err := svc.Provision(context.Background(), ProvisionInput{
		Email:    "Admin@Example.com",
		Password: "hunter2hunter2",
		Role:     enums.UserRoleAdmin,
	})
	require.NoError(t, err)
	require.Empty(t, temp, "explicit password must not produce a temp credential")
	require.Equal(t, "admin@example.com", dto.Email)
	require.Equal(t, enums.UserRoleAdmin, dto.Role)
	require.True(t, dto.IsActive)
	require.NotZero(t, dto.ID)

	var stored models.User
	require.NoError(t, client.DB().First(&stored, "id = ?", dto.ID).Error)
	match, err := security.VerifyPassword("hunter2hunter2", stored.PasswordHash)
	require.NoError(t, err)
	require.True(t, match)
}

func TestProvisionGeneratesTempPassword(t *testing.T) {
	client := newTestDB(t)
	svc := newTestProvisionService(t, client)

	dto, temp, err := svc.Provision(context.Background(), ProvisionInput{
		Email: "viewer@example.com",
	})
	require.NoError(t, err)
	require.Len(t, temp, 16)
	require.Equal(t, enums.UserRoleUser, dto.Role)

	var stored models.User
	require.NoError(t, client.DB().First(&stored, "id = ?", dto.ID).Error)
	match, err := security.VerifyPassword(temp, stored.PasswordHash)
	require.NoError(t, err)
	require.True(t, match)
}

func TestProvisionDuplicateEmail(t *testing.T) {
	client := newTestDB(t)
	svc := newTestProvisionService(t, client)

	_, _, err := svc.Provision(context.Background(), ProvisionInput{Email: "dup@example.com", Password: "secretsecret"})
	require.NoError(t, err)

	_, _, err = svc.Provision(context.Background(), ProvisionInput{Email: "DUP@example.com", Password: "secretsecret"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestProvisionValidation(t *testing.T) {
	client := newTestDB(t)
	svc := newTestProvisionService(t, client)

	cases := []ProvisionInput{
		{Email: ""},
		{Email: "not-an-email"},
		{Email: "ok@example.com", Role: enums.UserRole("owner")},
		{Email: "ok@example.com", Subscription: &types.Subscription{Status: "gold"}},
	}
	for _, input := range cases {
		_, _, err := svc.Provision(context.Background(), input)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed, "input %+v", input)
		require.Equal(t, pkgerrors.CodeValidation, typed.Code(), "input %+v", input)
	}
}
