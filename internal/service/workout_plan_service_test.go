package service

import (
	"context"
	"testing"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository/gormrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planInput(name string, memberID uint) WorkoutPlanInput {
	return WorkoutPlanInput{Name: &name, MemberID: &memberID}
}

func TestWorkoutPlanCreateAssignsTrainer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutPlanService(gormrepo.NewWorkoutPlanRepository(db))
	trainer := seedUser(t, db, "coach", domain.RoleTrainer)
	member := seedUser(t, db, "alice", domain.RoleMember)

	p, err := svc.Create(context.Background(), actorFor(trainer), planInput("Bulk", member.ID))
	require.NoError(t, err)
	assert.Equal(t, trainer.ID, p.TrainerID)
	assert.Equal(t, member.ID, p.MemberID)
}

func TestWorkoutPlanCreateRejectsMember(t *testing.T) {
	db := setupTestDB(t)
	repo := gormrepo.NewWorkoutPlanRepository(db)
	svc := NewWorkoutPlanService(repo)
	member := seedUser(t, db, "alice", domain.RoleMember)

	_, err := svc.Create(context.Background(), actorFor(member), planInput("Nope", member.ID))
	assert.ErrorIs(t, err, ErrWorkoutPlanCreator)
	assert.EqualError(t, err, "Only trainer or admin can create workout plans")

	// Nothing was persisted.
	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestWorkoutPlanTrainerScope(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutPlanService(gormrepo.NewWorkoutPlanRepository(db))
	coach := seedUser(t, db, "coach", domain.RoleTrainer)
	rival := seedUser(t, db, "rival", domain.RoleTrainer)
	alice := seedUser(t, db, "alice", domain.RoleMember)
	bob := seedUser(t, db, "bob", domain.RoleMember)

	_, err := svc.Create(context.Background(), actorFor(coach), planInput("A", alice.ID))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), actorFor(coach), planInput("B", bob.ID))
	require.NoError(t, err)
	rivalPlan, err := svc.Create(context.Background(), actorFor(rival), planInput("C", alice.ID))
	require.NoError(t, err)

	// A trainer sees exactly their own plans, never another trainer's.
	plans, err := svc.List(context.Background(), actorFor(coach))
	require.NoError(t, err)
	require.Len(t, plans, 2)
	for _, p := range plans {
		assert.Equal(t, coach.ID, p.TrainerID)
	}

	// Members see plans assigned to them, whoever authored them.
	alicePlans, err := svc.List(context.Background(), actorFor(alice))
	require.NoError(t, err)
	assert.Len(t, alicePlans, 2)

	// Another trainer's plan is out of scope: reported as not found.
	_, err = svc.Get(context.Background(), actorFor(coach), rivalPlan.ID)
	assert.ErrorIs(t, err, ErrWorkoutPlanNotFound)
	err = svc.Delete(context.Background(), actorFor(coach), rivalPlan.ID)
	assert.ErrorIs(t, err, ErrWorkoutPlanNotFound)
}

func TestWorkoutPlanUpdateKeepsTrainer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewWorkoutPlanService(gormrepo.NewWorkoutPlanRepository(db))
	coach := seedUser(t, db, "coach", domain.RoleTrainer)
	alice := seedUser(t, db, "alice", domain.RoleMember)

	p, err := svc.Create(context.Background(), actorFor(coach), planInput("Bulk", alice.ID))
	require.NoError(t, err)

	desc := "three days a week"
	p, err = svc.Update(context.Background(), actorFor(coach), p.ID, WorkoutPlanInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "three days a week", p.Description)
	assert.Equal(t, "Bulk", p.Name)
	assert.Equal(t, coach.ID, p.TrainerID)
}
