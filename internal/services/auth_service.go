package services

import (
	"context"
	"errors"
	"fmt"

	"social-go/internal/auth"
	"social-go/internal/config"
	"social-go/internal/models"
	"social-go/internal/storage"

	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists  = fmt.Errorf("%w: username or email already exists", ErrDuplicateKey)
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordMismatch   = fmt.Errorf("%w: the passwords do not match", ErrValidation)
)

// AuthService defines the interface for account registration and login.
type AuthService interface {
	Register(ctx context.Context, username, nickname, email, password, passwordConfirm string) (*models.User, error)
	Login(ctx context.Context, usernameOrEmail, password string) (token string, user *models.User, err error)
}

// authService is the AuthService implementation.
type authService struct {
	userRepo storage.UserRepository
	cfg      config.Config
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo storage.UserRepository, cfg config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register handles signup. The two password fields must match and the
// username must be free.
func (s *authService) Register(ctx context.Context, username, nickname, email, password, passwordConfirm string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if password != passwordConfirm {
		return nil, ErrPasswordMismatch
	}

	_, err := s.userRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if email != "" {
		_, err = s.userRepo.GetByEmail(ctx, email)
		if err == nil {
			return nil, ErrUserAlreadyExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &models.User{
		Username:     username,
		Nickname:     nickname,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Login verifies the credentials and issues a JWT.
func (s *authService) Login(ctx context.Context, usernameOrEmail, password string) (string, *models.User, error) {
	var user *models.User
	var err error

	user, err = s.userRepo.GetByUsername(ctx, usernameOrEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = s.userRepo.GetByEmail(ctx, usernameOrEmail)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUserNotFound
		} else if err != nil {
			return "", nil, fmt.Errorf("failed to look up user by email: %w", err)
		}
	} else if err != nil {
		return "", nil, fmt.Errorf("failed to look up user by username: %w", err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.cfg.Auth)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}
