package service

import (
	"context"
	"testing"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository/gormrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedPlan(t *testing.T, db *gorm.DB, trainerID, memberID uint) *domain.WorkoutPlan {
	t.Helper()
	plan := &domain.WorkoutPlan{Name: "Base", TrainerID: trainerID, MemberID: memberID}
	require.NoError(t, db.Create(plan).Error)
	return plan
}

func logInput(planID, minutes uint) WorkoutLogInput {
	return WorkoutLogInput{WorkoutPlanID: &planID, DurationMinutes: &minutes}
}

func TestWorkoutLogCreateStampsMemberAndDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutLogService(gormrepo.NewWorkoutLogRepository(db), true)
	coach := seedUser(t, db, "coach", domain.RoleTrainer)
	alice := seedUser(t, db, "alice", domain.RoleMember)
	plan := seedPlan(t, db, coach.ID, alice.ID)

	l, err := svc.Create(context.Background(), actorFor(alice), logInput(plan.ID, 45))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, l.MemberID)
	assert.Equal(t, domain.Today(), l.Date)
	assert.EqualValues(t, 45, l.DurationMinutes)
}

func TestWorkoutLogCreateRejectsNonMembers(t *testing.T) {
	db := setupTestDB(t)
	repo := gormrepo.NewWorkoutLogRepository(db)
	svc := NewWorkoutLogService(repo, true)
	coach := seedUser(t, db, "coach", domain.RoleTrainer)
	boss := seedUser(t, db, "boss", domain.RoleAdmin)
	alice := seedUser(t, db, "alice", domain.RoleMember)
	plan := seedPlan(t, db, coach.ID, alice.ID)

	_, err := svc.Create(context.Background(), actorFor(coach), logInput(plan.ID, 30))
	assert.ErrorIs(t, err, ErrWorkoutLogCreator)
	assert.EqualError(t, err, "Only members can log workouts")
	_, err = svc.Create(context.Background(), actorFor(boss), logInput(plan.ID, 30))
	assert.ErrorIs(t, err, ErrWorkoutLogCreator)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWorkoutLogMembersOnlySeeTheirOwn(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutLogService(gormrepo.NewWorkoutLogRepository(db), true)
	coach := seedUser(t, db, "coach", domain.RoleTrainer)
	alice := seedUser(t, db, "alice", domain.RoleMember)
	bob := seedUser(t, db, "bob", domain.RoleMember)
	plan := seedPlan(t, db, coach.ID, alice.ID)

	aliceLog, err := svc.Create(context.Background(), actorFor(alice), logInput(plan.ID, 30))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), actorFor(bob), logInput(plan.ID, 60))
	require.NoError(t, err)

	own, err := svc.List(context.Background(), actorFor(alice))
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, alice.ID, own[0].MemberID)

	_, err = svc.Get(context.Background(), actorFor(bob), aliceLog.ID)
	assert.ErrorIs(t, err, ErrWorkoutLogNotFound)
}

func TestWorkoutLogMutationPolicy(t *testing.T) {
	db := setupTestDB(t)
	repo := gormrepo.NewWorkoutLogRepository(db)
	coach := seedUser(t, db, "coach", domain.RoleTrainer)
	alice := seedUser(t, db, "alice", domain.RoleMember)
	plan := seedPlan(t, db, coach.ID, alice.ID)

	mutable := NewWorkoutLogService(repo, true)
	frozen := NewWorkoutLogService(repo, false)

	l, err := mutable.Create(context.Background(), actorFor(alice), logInput(plan.ID, 30))
	require.NoError(t, err)

	minutes := uint(50)
	_, err = frozen.Update(context.Background(), actorFor(alice), l.ID, WorkoutLogInput{DurationMinutes: &minutes})
	assert.ErrorIs(t, err, ErrLogMutationFrozen)
	err = frozen.Delete(context.Background(), actorFor(alice), l.ID)
	assert.ErrorIs(t, err, ErrLogMutationFrozen)

	l, err = mutable.Update(context.Background(), actorFor(alice), l.ID, WorkoutLogInput{DurationMinutes: &minutes})
	require.NoError(t, err)
	assert.EqualValues(t, 50, l.DurationMinutes)
	assert.NoError(t, mutable.Delete(context.Background(), actorFor(alice), l.ID))
}
