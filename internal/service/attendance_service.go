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
	ErrAttendanceNotFound = errors.New("attendance not found")
	// Surfaced verbatim as the validation message.
	ErrAttendanceCreator = errors.New("Only members can mark attendance")
	ErrAlreadyMarked     = errors.New("Attendance already marked today")
)

// AttendanceService handles daily check-ins. The same-day guard is checked
// up front for a friendly message and backed by the (member, day) unique
// index so concurrent duplicates cannot both commit.
type AttendanceService interface {
	List(ctx context.Context, actor authz.Actor) ([]domain.Attendance, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*domain.Attendance, error)
	CheckIn(ctx context.Context, actor authz.Actor) (*domain.Attendance, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	allowMutation  bool
}

// NewAttendanceService creates a new instance of attendanceService.
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, allowMutation bool) AttendanceService {
	return &attendanceService{attendanceRepo: attendanceRepo, allowMutation: allowMutation}
}

func (s *attendanceService) List(ctx context.Context, actor authz.Actor) ([]domain.Attendance, error) {
	switch authz.ReadScope(actor.Role, authz.ResourceAttendance) {
	case authz.ScopeAll:
		return s.attendanceRepo.List(ctx)
	case authz.ScopeOwnMember:
		return s.attendanceRepo.ListByMember(ctx, actor.UserID)
	default:
		return []domain.Attendance{}, nil
	}
}

func (s *attendanceService) Get(ctx context.Context, actor authz.Actor, id uint) (*domain.Attendance, error) {
	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAttendanceNotFound
		}
		return nil, err
	}
	if !authz.Owns(actor, authz.ResourceAttendance, 0, a.MemberID) {
		return nil, ErrAttendanceNotFound
	}
	return a, nil
}

func (s *attendanceService) CheckIn(ctx context.Context, actor authz.Actor) (*domain.Attendance, error) {
	if !authz.CanCreate(actor.Role, authz.ResourceAttendance) {
		return nil, ErrAttendanceCreator
	}

	exists, err := s.attendanceRepo.ExistsForDay(ctx, actor.UserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyMarked
	}

	a := &domain.Attendance{MemberID: actor.UserID}
	if err := s.attendanceRepo.Create(ctx, a); err != nil {
		// A concurrent request won the race between the check and the
		// insert; the unique index reports it as a conflict.
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrAlreadyMarked
		}
		return nil, err
	}
	return a, nil
}

func (s *attendanceService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	if !s.allowMutation {
		return ErrLogMutationFrozen
	}
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAttendanceNotFound
		}
		return err
	}
	return nil
}
