package services

import (
	"context"
	"fmt"

	"social-go/internal/models"
	"social-go/internal/storage"
)

// profileImageLimit caps how many uploaded images a profile page shows.
const profileImageLimit = 6

// Profile is the read-only composition served on a user's profile page.
type Profile struct {
	User      *models.User            `json:"user"`
	Groups    []*models.Group         `json:"groups"`
	Posts     []*models.Post          `json:"posts"`
	Images    []*models.UserImage     `json:"images"`
	Friends   []*models.UserBasicInfo `json:"friends"`
	Locations []*models.Location      `json:"locations"`
	AllUsers  []*models.UserBasicInfo `json:"allUsers"`
}

// ProfileService assembles profile pages. Pure reads, no side effects.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
}

type profileService struct {
	userRepo          storage.UserRepository
	groupRepo         storage.GroupRepository
	postRepo          storage.PostRepository
	imageRepo         storage.ImageRepository
	locationRepo      storage.LocationRepository
	friendshipService FriendshipService
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(
	userRepo storage.UserRepository,
	groupRepo storage.GroupRepository,
	postRepo storage.PostRepository,
	imageRepo storage.ImageRepository,
	locationRepo storage.LocationRepository,
	friendshipService FriendshipService,
) ProfileService {
	return &profileService{
		userRepo:          userRepo,
		groupRepo:         groupRepo,
		postRepo:          postRepo,
		imageRepo:         imageRepo,
		locationRepo:      locationRepo,
		friendshipService: friendshipService,
	}
}

// GetProfile gathers everything the profile page shows for one user: the
// user record, their groups, authored posts, up to six uploaded images in
// upload order, their friend list (empty when they have none), their
// locations, and the full user directory.
func (s *profileService) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups, err := s.groupRepo.GetUserGroups(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get groups for user %d: %w", userID, err)
	}

	posts, err := s.postRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts for user %d: %w", userID, err)
	}

	images, err := s.imageRepo.ListByUser(ctx, userID, profileImageLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get images for user %d: %w", userID, err)
	}

	friends, err := s.friendshipService.GetFriendsList(ctx, userID)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get locations for user %d: %w", userID, err)
	}

	allUsers, err := s.userRepo.ListAllBasicInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &Profile{
		User:      user,
		Groups:    groups,
		Posts:     posts,
		Images:    images,
		Friends:   friends,
		Locations: locations,
		AllUsers:  allUsers,
	}, nil
}
