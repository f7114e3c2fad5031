package service

import (
	"context"
	"errors"

	"alcyxob/gym-manager/internal/authz"
	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

var (
	ErrWorkoutPlanNotFound = errors.New("workout plan not found")
	// Surfaced verbatim as the validation message on ineligible creates.
	ErrWorkoutPlanCreator = errors.New("Only trainer or admin can create workout plans")
	ErrWorkoutPlanFields  = errors.New("name and member are required")
)

// WorkoutPlanInput carries the client-writable plan fields. The trainer
// reference is never part of the input contract; it is assigned from the
// authenticated creator.
type WorkoutPlanInput struct {
	Name        *string
	Description *string
	MemberID    *uint
}

type WorkoutPlanService interface {
	List(ctx context.Context, actor authz.Actor) ([]domain.WorkoutPlan, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*domain.WorkoutPlan, error)
	Create(ctx context.Context, actor authz.Actor, in WorkoutPlanInput) (*domain.WorkoutPlan, error)
	Update(ctx context.Context, actor authz.Actor, id uint, in WorkoutPlanInput) (*domain.WorkoutPlan, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type workoutPlanService struct {
	planRepo repository.WorkoutPlanRepository
}

// NewWorkoutPlanService creates a new instance of workoutPlanService.
func NewWorkoutPlanService(planRepo repository.WorkoutPlanRepository) WorkoutPlanService {
	return &workoutPlanService{planRepo: planRepo}
}

func (s *workoutPlanService) List(ctx context.Context, actor authz.Actor) ([]domain.WorkoutPlan, error) {
	switch authz.ReadScope(actor.Role, authz.ResourceWorkoutPlans) {
	case authz.ScopeAll:
		return s.planRepo.List(ctx)
	case authz.ScopeOwnTrainer:
		return s.planRepo.ListByTrainer(ctx, actor.UserID)
	case authz.ScopeOwnMember:
		return s.planRepo.ListByMember(ctx, actor.UserID)
	default:
		return []domain.WorkoutPlan{}, nil
	}
}

func (s *workoutPlanService) Get(ctx context.Context, actor authz.Actor, id uint) (*domain.WorkoutPlan, error) {
	p, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutPlanNotFound
		}
		return nil, err
	}
	if !authz.Owns(actor, authz.ResourceWorkoutPlans, p.TrainerID, p.MemberID) {
		return nil, ErrWorkoutPlanNotFound
	}
	return p, nil
}

func (s *workoutPlanService) Create(ctx context.Context, actor authz.Actor, in WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	if !authz.CanCreate(actor.Role, authz.ResourceWorkoutPlans) {
		return nil, ErrWorkoutPlanCreator
	}
	if in.Name == nil || in.MemberID == nil {
		return nil, ErrWorkoutPlanFields
	}
	p := &domain.WorkoutPlan{
		Name:      *in.Name,
		TrainerID: actor.UserID, // server-assigned, never client-supplied
		MemberID:  *in.MemberID,
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if err := s.planRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *workoutPlanService) Update(ctx context.Context, actor authz.Actor, id uint, in WorkoutPlanInput) (*domain.WorkoutPlan, error) {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.MemberID != nil {
		p.MemberID = *in.MemberID
	}

	if err := s.planRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *workoutPlanService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutPlanNotFound
		}
		return err
	}
	return nil
}
