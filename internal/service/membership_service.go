package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/gym-manager/internal/authz"
	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

var (
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrMembershipFields    = errors.New("member, start_date and end_date are required")
	ErrMemberHasMembership = errors.New("member already has a membership")
)

// MembershipInput carries the client-writable membership fields.
type MembershipInput struct {
	MemberID  *uint
	StartDate *time.Time
	EndDate   *time.Time
	Active    *bool
}

// MembershipService manages subscription windows. The active flag is
// recomputed on every save (see domain.Membership.BeforeSave).
type MembershipService interface {
	List(ctx context.Context, actor authz.Actor) ([]domain.Membership, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*domain.Membership, error)
	Create(ctx context.Context, actor authz.Actor, in MembershipInput) (*domain.Membership, error)
	Update(ctx context.Context, actor authz.Actor, id uint, in MembershipInput) (*domain.Membership, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type membershipService struct {
	membershipRepo repository.MembershipRepository
}

// NewMembershipService creates a new instance of membershipService.
func NewMembershipService(membershipRepo repository.MembershipRepository) MembershipService {
	return &membershipService{membershipRepo: membershipRepo}
}

func (s *membershipService) List(ctx context.Context, actor authz.Actor) ([]domain.Membership, error) {
	switch authz.ReadScope(actor.Role, authz.ResourceMemberships) {
	case authz.ScopeAll:
		return s.membershipRepo.List(ctx)
	case authz.ScopeOwnMember:
		return s.membershipRepo.ListByMember(ctx, actor.UserID)
	default:
		return []domain.Membership{}, nil
	}
}

func (s *membershipService) Get(ctx context.Context, actor authz.Actor, id uint) (*domain.Membership, error) {
	m, err := s.membershipRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, err
	}
	if !authz.Owns(actor, authz.ResourceMemberships, 0, m.MemberID) {
		return nil, ErrMembershipNotFound
	}
	return m, nil
}

func (s *membershipService) Create(ctx context.Context, actor authz.Actor, in MembershipInput) (*domain.Membership, error) {
	if in.MemberID == nil || in.StartDate == nil || in.EndDate == nil {
		return nil, ErrMembershipFields
	}
	m := &domain.Membership{
		MemberID:  *in.MemberID,
		StartDate: domain.DateOf(*in.StartDate),
		EndDate:   domain.DateOf(*in.EndDate),
		Active:    true,
	}
	if in.Active != nil {
		m.Active = *in.Active
	}
	if err := s.membershipRepo.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrMemberHasMembership
		}
		return nil, err
	}
	return m, nil
}

func (s *membershipService) Update(ctx context.Context, actor authz.Actor, id uint, in MembershipInput) (*domain.Membership, error) {
	m, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.MemberID != nil {
		m.MemberID = *in.MemberID
	}
	if in.StartDate != nil {
		m.StartDate = domain.DateOf(*in.StartDate)
	}
	if in.EndDate != nil {
		m.EndDate = domain.DateOf(*in.EndDate)
	}
	if in.Active != nil {
		m.Active = *in.Active
	}

	if err := s.membershipRepo.Update(ctx, m); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrMemberHasMembership
		}
		return nil, err
	}
	return m, nil
}

func (s *membershipService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.membershipRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return err
	}
	return nil
}
