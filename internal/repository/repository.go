package repository

import (
	"alcyxob/gym-manager/internal/domain"
	"context"
	"time"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
	ErrConflict = RepositoryError("conflict")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}

// MembershipRepository defines the interface for interacting with membership data.
type MembershipRepository interface {
	Create(ctx context.Context, m *domain.Membership) error
	GetByID(ctx context.Context, id uint) (*domain.Membership, error)
	List(ctx context.Context) ([]domain.Membership, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.Membership, error)
	Update(ctx context.Context, m *domain.Membership) error
	Delete(ctx context.Context, id uint) error
	CountActive(ctx context.Context) (int64, error)
}

// WorkoutPlanRepository defines the interface for interacting with workout plan data.
type WorkoutPlanRepository interface {
	Create(ctx context.Context, p *domain.WorkoutPlan) error
	GetByID(ctx context.Context, id uint) (*domain.WorkoutPlan, error)
	List(ctx context.Context) ([]domain.WorkoutPlan, error)
	ListByTrainer(ctx context.Context, trainerID uint) ([]domain.WorkoutPlan, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.WorkoutPlan, error)
	Update(ctx context.Context, p *domain.WorkoutPlan) error
	Delete(ctx context.Context, id uint) error
}

// WorkoutLogRepository defines the interface for interacting with workout log data.
type WorkoutLogRepository interface {
	Create(ctx context.Context, l *domain.WorkoutLog) error
	GetByID(ctx context.Context, id uint) (*domain.WorkoutLog, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.WorkoutLog, error)
	Update(ctx context.Context, l *domain.WorkoutLog) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// DietPlanRepository defines the interface for interacting with diet plan data.
type DietPlanRepository interface {
	Create(ctx context.Context, p *domain.DietPlan) error
	GetByID(ctx context.Context, id uint) (*domain.DietPlan, error)
	List(ctx context.Context) ([]domain.DietPlan, error)
	ListByTrainer(ctx context.Context, trainerID uint) ([]domain.DietPlan, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.DietPlan, error)
	Update(ctx context.Context, p *domain.DietPlan) error
	Delete(ctx context.Context, id uint) error
}

// AttendanceRepository defines the interface for interacting with attendance data.
type AttendanceRepository interface {
	Create(ctx context.Context, a *domain.Attendance) error
	GetByID(ctx context.Context, id uint) (*domain.Attendance, error)
	List(ctx context.Context) ([]domain.Attendance, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.Attendance, error)
	Delete(ctx context.Context, id uint) error
	ExistsForDay(ctx context.Context, memberID uint, day time.Time) (bool, error)
	CountForDay(ctx context.Context, day time.Time) (int64, error)
}
