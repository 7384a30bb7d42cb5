package services

import (
	"context"
	"fmt"

	"social-go/internal/models"
	"social-go/internal/storage"
)

// UserService defines the interface for user profile operations.
type UserService interface {
	GetUserProfile(ctx context.Context, userID uint) (*models.User, error)
	UpdateUserProfile(ctx context.Context, userID uint, nickname, avatarURL, bio string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.UserBasicInfo, error)
}

// userService is the UserService implementation.
type userService struct {
	userRepo storage.UserRepository
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo storage.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetUserProfile retrieves a user's public profile.
func (s *userService) GetUserProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateUserProfile updates the caller's own profile fields.
func (s *userService) UpdateUserProfile(ctx context.Context, userID uint, nickname, avatarURL, bio string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile, user %d not found: %w", userID, err)
	}

	updated := false
	if nickname != "" && user.Nickname != nickname {
		user.Nickname = nickname
		updated = true
	}
	if avatarURL != "" && user.AvatarURL != avatarURL {
		user.AvatarURL = avatarURL
		updated = true
	}
	if bio != "" && user.Bio != bio {
		user.Bio = bio
		updated = true
	}

	if !updated {
		user.PasswordHash = ""
		return user, nil
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", userID, err)
	}
	user.PasswordHash = ""
	return user, nil
}

// ListUsers returns the full user directory as basic info rows.
func (s *userService) ListUsers(ctx context.Context) ([]*models.UserBasicInfo, error) {
	return s.userRepo.ListAllBasicInfo(ctx)
}
