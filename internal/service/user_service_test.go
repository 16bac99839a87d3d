package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/domain"
	"postboard/internal/repository/sqlite"
)

func setupUserService(t *testing.T) UserService {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	require.NoError(t, userRepo.Init(context.Background()))

	return NewUserService(userRepo, "join-secret")
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "password123", "join-secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Empty(t, user.PasswordHash, "password hash never leaves the service")

	authed, err := svc.Authenticate(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = svc.Authenticate(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsBadSecret(t *testing.T) {
	svc := setupUserService(t)

	_, err := svc.Register(context.Background(), "alice", "password123", "wrong")
	assert.ErrorIs(t, err, ErrInvalidRegistrationPassword)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "password123", "join-secret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "password456", "join-secret")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := setupUserService(t)

	_, err := svc.Register(context.Background(), "alice", "short", "join-secret")
	assert.Error(t, err)
}

func TestEnsureAdminCreatesAccount(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "root", "password123"))

	admin, err := svc.Authenticate(ctx, "root", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)

	// idempotent
	require.NoError(t, svc.EnsureAdmin(ctx, "root", "password123"))
}

func TestEnsureAdminPromotesExistingUser(t *testing.T) {
	svc := setupUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "password123", "join-secret")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)

	require.NoError(t, svc.EnsureAdmin(ctx, "alice", "password123"))

	promoted, err := svc.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, promoted.Role)
}
