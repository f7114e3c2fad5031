package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository/gormrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func membershipInput(memberID uint, start, end time.Time) MembershipInput {
	return MembershipInput{MemberID: &memberID, StartDate: &start, EndDate: &end}
}

func TestMembershipExpiresOnSave(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMembershipService(gormrepo.NewMembershipRepository(db))
	admin := seedUser(t, db, "boss", domain.RoleAdmin)
	member := seedUser(t, db, "alice", domain.RoleMember)

	now := time.Now().UTC()
	m, err := svc.Create(context.Background(), actorFor(admin),
		membershipInput(member.ID, now.AddDate(-1, 0, 0), now.AddDate(0, 0, -1)))
	require.NoError(t, err)
	// End date already passed, so the save hook deactivated it.
	assert.False(t, m.Active)

	// Explicitly reactivating without moving the end date does not stick.
	active := true
	m, err = svc.Update(context.Background(), actorFor(admin), m.ID, MembershipInput{Active: &active})
	require.NoError(t, err)
	assert.False(t, m.Active)

	// Moving the end date into the future allows reactivation.
	future := now.AddDate(0, 1, 0)
	m, err = svc.Update(context.Background(), actorFor(admin), m.ID, MembershipInput{EndDate: &future, Active: &active})
	require.NoError(t, err)
	assert.True(t, m.Active)
}

func TestMembershipScopes(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMembershipService(gormrepo.NewMembershipRepository(db))
	admin := seedUser(t, db, "boss", domain.RoleAdmin)
	trainer := seedUser(t, db, "coach", domain.RoleTrainer)
	alice := seedUser(t, db, "alice", domain.RoleMember)
	bob := seedUser(t, db, "bob", domain.RoleMember)

	now := time.Now().UTC()
	aliceMembership, err := svc.Create(context.Background(), actorFor(admin),
		membershipInput(alice.ID, now, now.AddDate(0, 1, 0)))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), actorFor(admin),
		membershipInput(bob.ID, now, now.AddDate(0, 1, 0)))
	require.NoError(t, err)

	all, err := svc.List(context.Background(), actorFor(admin))
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(context.Background(), actorFor(alice))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, alice.ID, own[0].MemberID)

	// Trainers have no membership scope: empty list, not an error.
	none, err := svc.List(context.Background(), actorFor(trainer))
	require.NoError(t, err)
	assert.Empty(t, none)

	// Out-of-scope retrieve is indistinguishable from absence.
	_, err = svc.Get(context.Background(), actorFor(bob), aliceMembership.ID)
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestMembershipOnePerMember(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMembershipService(gormrepo.NewMembershipRepository(db))
	admin := seedUser(t, db, "boss", domain.RoleAdmin)
	alice := seedUser(t, db, "alice", domain.RoleMember)

	now := time.Now().UTC()
	_, err := svc.Create(context.Background(), actorFor(admin),
		membershipInput(alice.ID, now, now.AddDate(0, 1, 0)))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), actorFor(admin),
		membershipInput(alice.ID, now, now.AddDate(0, 2, 0)))
	assert.ErrorIs(t, err, ErrMemberHasMembership)
}
