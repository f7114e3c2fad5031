package service

import (
	"context"
	"testing"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository/gormrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strp(s string) *string { return &s }

func TestUserListScopes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(gormrepo.NewUserRepository(db))
	admin := seedUser(t, db, "boss", domain.RoleAdmin)
	trainer := seedUser(t, db, "coach", domain.RoleTrainer)
	alice := seedUser(t, db, "alice", domain.RoleMember)
	seedUser(t, db, "bob", domain.RoleMember)

	all, err := svc.List(context.Background(), actorFor(admin))
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// Trainers see member-role users only.
	members, err := svc.List(context.Background(), actorFor(trainer))
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, u := range members {
		assert.Equal(t, domain.RoleMember, u.Role)
	}

	// Members get an empty list, not an error.
	none, err := svc.List(context.Background(), actorFor(alice))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUserGetScope(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(gormrepo.NewUserRepository(db))
	admin := seedUser(t, db, "boss", domain.RoleAdmin)
	trainer := seedUser(t, db, "coach", domain.RoleTrainer)
	alice := seedUser(t, db, "alice", domain.RoleMember)

	got, err := svc.Get(context.Background(), actorFor(trainer), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	// Non-member targets are outside the trainer's scope: reported as absent.
	_, err = svc.Get(context.Background(), actorFor(trainer), admin.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.Get(context.Background(), actorFor(alice), trainer.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(gormrepo.NewUserRepository(db))
	admin := seedUser(t, db, "boss", domain.RoleAdmin)

	// Role defaults to member and the password is stored hashed.
	u, err := svc.Create(context.Background(), actorFor(admin), UserInput{
		Username: strp("alice"),
		Email:    strp("alice@gym.test"),
		Password: strp("password123"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, u.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")))

	_, err = svc.Create(context.Background(), actorFor(admin), UserInput{Username: strp("dave")})
	assert.ErrorIs(t, err, ErrUserFields)

	_, err = svc.Create(context.Background(), actorFor(admin), UserInput{
		Username: strp("dave"),
		Email:    strp("dave@gym.test"),
		Role:     strp("janitor"),
	})
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Create(context.Background(), actorFor(admin), UserInput{
		Username: strp("alice"),
		Email:    strp("alice2@gym.test"),
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserUpdateOutOfScope(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(gormrepo.NewUserRepository(db))
	trainer := seedUser(t, db, "coach", domain.RoleTrainer)
	admin := seedUser(t, db, "boss", domain.RoleAdmin)

	_, err := svc.Update(context.Background(), actorFor(trainer), admin.ID, UserInput{Username: strp("pwned")})
	assert.ErrorIs(t, err, ErrUserNotFound)
	err = svc.Delete(context.Background(), actorFor(trainer), admin.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
