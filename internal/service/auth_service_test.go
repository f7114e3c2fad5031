package service

import (
	"context"
	"testing"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
	"alcyxob/gym-manager/internal/repository/gormrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T, db *gorm.DB) (AuthService, repository.UserRepository) {
	t.Helper()
	userRepo := gormrepo.NewUserRepository(db)
	return NewAuthService(userRepo, testSecret, 0, 0), userRepo
}

func TestRegisterForcesMemberRole(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAuthService(t, db)

	user, err := svc.Register(context.Background(), "alice", "alice@gym.test", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, user.Role)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAuthService(t, db)

	_, err := svc.Register(context.Background(), "alice", "alice@gym.test", "password123")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "alice", "other@gym.test", "password123")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAdminRegisterSucceedsExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	svc, userRepo := newAuthService(t, db)

	admin, err := svc.AdminRegister(context.Background(), "boss", "boss@gym.test", "password123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
	assert.True(t, admin.IsStaff)
	assert.True(t, admin.IsSuperuser)

	// A second attempt with fresh credentials is rejected and creates nothing.
	_, err = svc.AdminRegister(context.Background(), "boss2", "boss2@gym.test", "password123")
	assert.ErrorIs(t, err, ErrAdminExists)

	n, err := userRepo.CountByRole(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	_, err = userRepo.GetByUsername(context.Background(), "boss2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLoginReturnsTokenPairWithRole(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAuthService(t, db)

	_, err := svc.Register(context.Background(), "alice", "alice@gym.test", "password123")
	require.NoError(t, err)

	pair, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
	assert.NotEqual(t, pair.Access, pair.Refresh)
	assert.Equal(t, domain.RoleMember, pair.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAuthService(t, db)

	_, err := svc.Register(context.Background(), "alice", "alice@gym.test", "password123")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	_, err = svc.Login(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestRefreshIssuesNewAccessToken(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAuthService(t, db)

	_, err := svc.Register(context.Background(), "alice", "alice@gym.test", "password123")
	require.NoError(t, err)
	pair, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)

	access, err := svc.Refresh(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	db := setupTestDB(t)
	svc, _ := newAuthService(t, db)

	_, err := svc.Register(context.Background(), "alice", "alice@gym.test", "password123")
	require.NoError(t, err)
	pair, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)

	// An access token is not a refresh token.
	_, err = svc.Refresh(context.Background(), pair.Access)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	_, err = svc.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}
