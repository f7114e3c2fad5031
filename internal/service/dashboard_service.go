package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/gym-manager/internal/authz"
	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"
)

// Surfaced verbatim with a 403 for non-admin callers.
var ErrDashboardForbidden = errors.New("Not authorized")

// DashboardStats is the admin overview. Recomputed on every call.
type DashboardStats struct {
	TotalMembers      int64 `json:"total_members"`
	ActiveMemberships int64 `json:"active_memberships"`
	TotalWorkouts     int64 `json:"total_workouts"`
	TodayAttendance   int64 `json:"today_attendance"`
}

type DashboardService interface {
	Stats(ctx context.Context, actor authz.Actor) (*DashboardStats, error)
}

type dashboardService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	logRepo        repository.WorkoutLogRepository
	attendanceRepo repository.AttendanceRepository
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	logRepo repository.WorkoutLogRepository,
	attendanceRepo repository.AttendanceRepository,
) DashboardService {
	return &dashboardService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		logRepo:        logRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *dashboardService) Stats(ctx context.Context, actor authz.Actor) (*DashboardStats, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, ErrDashboardForbidden
	}

	members, err := s.userRepo.CountByRole(ctx, domain.RoleMember)
	if err != nil {
		return nil, err
	}
	active, err := s.membershipRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := s.logRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.attendanceRepo.CountForDay(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalMembers:      members,
		ActiveMemberships: active,
		TotalWorkouts:     workouts,
		TodayAttendance:   today,
	}, nil
}
