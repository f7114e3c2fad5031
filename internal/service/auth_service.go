package service

import (
	"context"
	"errors"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this username or email already exists")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid username or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidRefreshToken  = errors.New("invalid or expired refresh token")
	ErrAdminExists          = errors.New("Admin already exists.")
)

// TokenPair is the result of a successful login.
type TokenPair struct {
	Access  string
	Refresh string
	Role    domain.Role
}

// AuthService issues accounts and signed tokens.
type AuthService interface {
	// Register creates a member-role account. The role is forced server-side
	// regardless of anything the client sent.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// AdminRegister creates the one and only admin account. Fails with
	// ErrAdminExists whenever an admin-role user is already present; the
	// check runs against the store on every attempt.
	AdminRegister(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	// Refresh validates a refresh token and issues a fresh access token.
	// The user is re-read so a changed role is reflected immediately.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	JWTSecret() string
}

type authService struct {
	userRepo          repository.UserRepository
	jwtSecret         string
	accessExpiration  time.Duration
	refreshExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, accessExp, refreshExp time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if accessExp <= 0 {
		accessExp = time.Hour
	}
	if refreshExp <= 0 {
		refreshExp = 24 * time.Hour
	}
	return &authService{
		userRepo:          userRepo,
		jwtSecret:         jwtSecret,
		accessExpiration:  accessExp,
		refreshExpiration: refreshExp,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	return s.createUser(ctx, username, email, password, domain.RoleMember, false)
}

func (s *authService) AdminRegister(ctx context.Context, username, email, password string) (*domain.User, error) {
	admins, err := s.userRepo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if admins > 0 {
		return nil, ErrAdminExists
	}
	return s.createUser(ctx, username, email, password, domain.RoleAdmin, true)
}

func (s *authService) createUser(ctx context.Context, username, email, password string, role domain.Role, elevated bool) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, errors.New("username, email and password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		IsStaff:      elevated,
		IsSuperuser:  elevated,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	if username == "" || password == "" {
		return nil, ErrAuthenticationFailed
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthenticationFailed
	}

	access, err := s.signToken(user, tokenTypeAccess, s.accessExpiration)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	refresh, err := s.signToken(user, tokenTypeRefresh, s.refreshExpiration)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &TokenPair{Access: access, Refresh: refresh, Role: user.Role}, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid || claims.TokenType != tokenTypeRefresh {
		return "", ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	access, err := s.signToken(user, tokenTypeAccess, s.accessExpiration)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return access, nil
}

func (s *authService) JWTSecret() string {
	return s.jwtSecret
}

// --- JWT Helpers ---

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims defines the structure of the JWT payload. The role claim lets
// downstream handlers authorize without a database lookup.
type Claims struct {
	UserID    uint        `json:"uid"`
	Username  string      `json:"uname"`
	Role      domain.Role `json:"role"`
	TokenType string      `json:"typ"`
	jwt.RegisteredClaims
}

func (s *authService) signToken(user *domain.User, tokenType string, exp time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "gym-manager",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
