package service

import (
	"context"
	"errors"

	"alcyxob/gym-manager/internal/authz"
	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserFields   = errors.New("username and email are required")
	ErrInvalidRole  = errors.New("role must be one of admin, trainer, member")
)

// UserInput carries the client-writable user fields. Nil pointers on update
// leave the stored value untouched; Password, when set, is re-hashed.
type UserInput struct {
	Username *string
	Email    *string
	Password *string
	Role     *string
}

// UserService handles admin/trainer facing user management.
// Reads are scoped by the permission table: admins see everyone, trainers
// see member-role users, members see nobody.
type UserService interface {
	List(ctx context.Context, actor authz.Actor) ([]domain.User, error)
	Get(ctx context.Context, actor authz.Actor, id uint) (*domain.User, error)
	Create(ctx context.Context, actor authz.Actor, in UserInput) (*domain.User, error)
	Update(ctx context.Context, actor authz.Actor, id uint, in UserInput) (*domain.User, error)
	Delete(ctx context.Context, actor authz.Actor, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context, actor authz.Actor) ([]domain.User, error) {
	switch authz.ReadScope(actor.Role, authz.ResourceUsers) {
	case authz.ScopeAll:
		return s.userRepo.List(ctx)
	case authz.ScopeMemberUsers:
		return s.userRepo.ListByRole(ctx, domain.RoleMember)
	default:
		// An empty scope is a normal empty list, not a permission error.
		return []domain.User{}, nil
	}
}

func (s *userService) Get(ctx context.Context, actor authz.Actor, id uint) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !s.inScope(actor, user) {
		// Out of scope is indistinguishable from absent.
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Create(ctx context.Context, actor authz.Actor, in UserInput) (*domain.User, error) {
	if in.Username == nil || in.Email == nil {
		return nil, ErrUserFields
	}
	user := &domain.User{Username: *in.Username, Email: *in.Email}

	if in.Role != nil {
		role, ok := domain.ParseRole(*in.Role)
		if !ok {
			return nil, ErrInvalidRole
		}
		user.Role = role
	} else {
		user.Role = domain.RoleMember
	}

	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrHashingFailed
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, actor authz.Actor, id uint, in UserInput) (*domain.User, error) {
	user, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil {
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		role, ok := domain.ParseRole(*in.Role)
		if !ok {
			return nil, ErrInvalidRole
		}
		user.Role = role
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrHashingFailed
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *userService) inScope(actor authz.Actor, target *domain.User) bool {
	switch authz.ReadScope(actor.Role, authz.ResourceUsers) {
	case authz.ScopeAll:
		return true
	case authz.ScopeMemberUsers:
		return target.Role == domain.RoleMember
	default:
		return false
	}
}
