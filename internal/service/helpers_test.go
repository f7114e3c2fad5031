package service

import (
	"fmt"
	"path/filepath"
	"testing"

	"alcyxob/gym-manager/internal/authz"
	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository/gormrepo"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gormrepo.Connect("sqlite", filepath.Join(t.TempDir(), "gym.db"))
	require.NoError(t, err)
	require.NoError(t, gormrepo.Migrate(db))
	return db
}

// seedUser inserts a user directly; password hashing is skipped because
// only the auth tests exercise credentials.
func seedUser(t *testing.T, db *gorm.DB, username string, role domain.Role) *domain.User {
	t.Helper()
	user := &domain.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@gym.test", username),
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func actorFor(user *domain.User) authz.Actor {
	return authz.Actor{UserID: user.ID, Role: user.Role}
}
