package service

import (
	"context"
	"errors"

	"alcyxob/gym-manager/internal/authz"
	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

var (
	ErrWorkoutLogNotFound = errors.New("workout log not found")
	ErrWorkoutLogCreator  = errors.New("Only members can log workouts")
	ErrWorkoutLogFields   = errors.New("workout_plan and duration_minutes are required")
	ErrLogMutationFrozen  = errors.New("workout history is read-only")
)

// WorkoutLogInput carries the client-writable log fields. The member
// reference and the date are server-assigned.
type WorkoutLogInput struct {
	WorkoutPlanID   *uint
	DurationMinutes *uint
}

// WorkoutLogService records completed sessions. Routes are member-only;
// the scope keeps each member on their own history regardless.
type WorkoutLogService interface {
	List(ctx context.Context, actor authz.Actor) ([]domain.WorkoutLog, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*domain.WorkoutLog, error)
	Create(ctx context.Context, actor authz.Actor, in WorkoutLogInput) (*domain.WorkoutLog, error)
	Update(ctx context.Context, actor authz.Actor, id uint, in WorkoutLogInput) (*domain.WorkoutLog, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type workoutLogService struct {
	logRepo repository.WorkoutLogRepository
	// allowMutation decides whether logs may be changed after creation.
	// Policy knob: the upstream behavior permits it, so it defaults to true.
	allowMutation bool
}

// NewWorkoutLogService creates a new instance of workoutLogService.
func NewWorkoutLogService(logRepo repository.WorkoutLogRepository, allowMutation bool) WorkoutLogService {
	return &workoutLogService{logRepo: logRepo, allowMutation: allowMutation}
}

func (s *workoutLogService) List(ctx context.Context, actor authz.Actor) ([]domain.WorkoutLog, error) {
	if authz.ReadScope(actor.Role, authz.ResourceWorkoutLogs) != authz.ScopeOwnMember {
		return []domain.WorkoutLog{}, nil
	}
	return s.logRepo.ListByMember(ctx, actor.UserID)
}

func (s *workoutLogService) Get(ctx context.Context, actor authz.Actor, id uint) (*domain.WorkoutLog, error) {
	l, err := s.logRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutLogNotFound
		}
		return nil, err
	}
	if !authz.Owns(actor, authz.ResourceWorkoutLogs, 0, l.MemberID) {
		return nil, ErrWorkoutLogNotFound
	}
	return l, nil
}

func (s *workoutLogService) Create(ctx context.Context, actor authz.Actor, in WorkoutLogInput) (*domain.WorkoutLog, error) {
	if !authz.CanCreate(actor.Role, authz.ResourceWorkoutLogs) {
		return nil, ErrWorkoutLogCreator
	}
	if in.WorkoutPlanID == nil || in.DurationMinutes == nil {
		return nil, ErrWorkoutLogFields
	}
	l := &domain.WorkoutLog{
		MemberID:        actor.UserID, // server-assigned, never client-supplied
		WorkoutPlanID:   *in.WorkoutPlanID,
		DurationMinutes: *in.DurationMinutes,
	}
	if err := s.logRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *workoutLogService) Update(ctx context.Context, actor authz.Actor, id uint, in WorkoutLogInput) (*domain.WorkoutLog, error) {
	if !s.allowMutation {
		return nil, ErrLogMutationFrozen
	}
	l, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.WorkoutPlanID != nil {
		l.WorkoutPlanID = *in.WorkoutPlanID
	}
	if in.DurationMinutes != nil {
		l.DurationMinutes = *in.DurationMinutes
	}

	if err := s.logRepo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *workoutLogService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	if !s.allowMutation {
		return ErrLogMutationFrozen
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.logRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutLogNotFound
		}
		return err
	}
	return nil
}
