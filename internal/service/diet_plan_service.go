package service

import (
	"context"
	"errors"

	"alcyxob/gym-manager/internal/authz"
	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

var (
	ErrDietPlanNotFound = errors.New("diet plan not found")
	// Surfaced verbatim as the validation message on ineligible creates.
	ErrDietPlanCreator = errors.New("Only trainer or admin can create diet plans")
	ErrDietPlanFields  = errors.New("member, calories, protein, carbs and fats are required")
)

// DietPlanInput carries the client-writable diet plan fields. The trainer
// reference is assigned from the authenticated creator, never the payload.
type DietPlanInput struct {
	MemberID *uint
	Calories *uint
	Protein  *uint
	Carbs    *uint
	Fats     *uint
}

type DietPlanService interface {
	List(ctx context.Context, actor authz.Actor) ([]domain.DietPlan, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*domain.DietPlan, error)
	Create(ctx context.Context, actor authz.Actor, in DietPlanInput) (*domain.DietPlan, error)
	Update(ctx context.Context, actor authz.Actor, id uint, in DietPlanInput) (*domain.DietPlan, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type dietPlanService struct {
	dietRepo repository.DietPlanRepository
}

// NewDietPlanService creates a new instance of dietPlanService.
func NewDietPlanService(dietRepo repository.DietPlanRepository) DietPlanService {
	return &dietPlanService{dietRepo: dietRepo}
}

func (s *dietPlanService) List(ctx context.Context, actor authz.Actor) ([]domain.DietPlan, error) {
	switch authz.ReadScope(actor.Role, authz.ResourceDietPlans) {
	case authz.ScopeAll:
		return s.dietRepo.List(ctx)
	case authz.ScopeOwnTrainer:
		return s.dietRepo.ListByTrainer(ctx, actor.UserID)
	case authz.ScopeOwnMember:
		return s.dietRepo.ListByMember(ctx, actor.UserID)
	default:
		return []domain.DietPlan{}, nil
	}
}

func (s *dietPlanService) Get(ctx context.Context, actor authz.Actor, id uint) (*domain.DietPlan, error) {
	p, err := s.dietRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDietPlanNotFound
		}
		return nil, err
	}
	if !authz.Owns(actor, authz.ResourceDietPlans, p.TrainerID, p.MemberID) {
		return nil, ErrDietPlanNotFound
	}
	return p, nil
}

func (s *dietPlanService) Create(ctx context.Context, actor authz.Actor, in DietPlanInput) (*domain.DietPlan, error) {
	if !authz.CanCreate(actor.Role, authz.ResourceDietPlans) {
		return nil, ErrDietPlanCreator
	}
	if in.MemberID == nil || in.Calories == nil || in.Protein == nil || in.Carbs == nil || in.Fats == nil {
		return nil, ErrDietPlanFields
	}
	p := &domain.DietPlan{
		TrainerID: actor.UserID, // server-assigned, never client-supplied
		MemberID:  *in.MemberID,
		Calories:  *in.Calories,
		Protein:   *in.Protein,
		Carbs:     *in.Carbs,
		Fats:      *in.Fats,
	}
	if err := s.dietRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *dietPlanService) Update(ctx context.Context, actor authz.Actor, id uint, in DietPlanInput) (*domain.DietPlan, error) {
	p, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.MemberID != nil {
		p.MemberID = *in.MemberID
	}
	if in.Calories != nil {
		p.Calories = *in.Calories
	}
	if in.Protein != nil {
		p.Protein = *in.Protein
	}
	if in.Carbs != nil {
		p.Carbs = *in.Carbs
	}
	if in.Fats != nil {
		p.Fats = *in.Fats
	}

	if err := s.dietRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *dietPlanService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.dietRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDietPlanNotFound
		}
		return err
	}
	return nil
}
