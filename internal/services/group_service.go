package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"social-go/internal/models"
	"social-go/internal/storage"

	"gorm.io/gorm"
)

var (
	ErrGroupFieldsMissing = fmt.Errorf("%w: name, description and image are all required", ErrValidation)
	ErrGroupNameTaken     = fmt.Errorf("%w: a group with this name already exists", ErrDuplicateKey)
)

// GroupService owns group definitions and membership sets.
type GroupService interface {
	CreateGroup(ctx context.Context, name, description, imageURL string) (*models.Group, error)
	GetGroupByID(ctx context.Context, groupID uint) (*models.Group, error)
	ListGroups(ctx context.Context) ([]*models.Group, error)
	DeleteGroup(ctx context.Context, groupID uint) error

	JoinGroup(ctx context.Context, userID, groupID uint) error
	LeaveGroup(ctx context.Context, userID, groupID uint) error
	GetGroupMembers(ctx context.Context, groupID uint) ([]*models.GroupMember, error)
	GetUserGroups(ctx context.Context, userID uint) ([]*models.Group, error)
}

// groupService is the GroupService implementation.
type groupService struct {
	db        *gorm.DB
	groupRepo storage.GroupRepository
	userRepo  storage.UserRepository
}

// NewGroupService creates a new GroupService instance.
func NewGroupService(db *gorm.DB, groupRepo storage.GroupRepository, userRepo storage.UserRepository) GroupService {
	return &groupService{db: db, groupRepo: groupRepo, userRepo: userRepo}
}

// CreateGroup creates a new group. All three fields are required and the name
// must be globally unique.
func (s *groupService) CreateGroup(ctx context.Context, name, description, imageURL string) (*models.Group, error) {
	if name == "" || description == "" || imageURL == "" {
		return nil, ErrGroupFieldsMissing
	}

	_, err := s.groupRepo.GetGroupByName(ctx, name)
	if err == nil {
		return nil, ErrGroupNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check group name '%s': %w", name, err)
	}

	newGroup := &models.Group{
		Name:        name,
		Description: description,
		ImageURL:    imageURL,
	}

	if err := s.groupRepo.CreateGroup(ctx, newGroup); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return newGroup, nil
}

// GetGroupByID retrieves a group with its members.
func (s *groupService) GetGroupByID(ctx context.Context, groupID uint) (*models.Group, error) {
	return s.groupRepo.GetGroupByID(ctx, groupID)
}

// ListGroups retrieves the group index.
func (s *groupService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.groupRepo.ListGroups(ctx)
}

// DeleteGroup hard-deletes a group together with its posts, their comments
// and its memberships, all in one transaction.
func (s *groupService) DeleteGroup(ctx context.Context, groupID uint) error {
	_, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCommentRepo := storage.NewGormCommentRepository(tx)
		txPostRepo := storage.NewGormPostRepository(tx)
		txGroupRepo := storage.NewGormGroupRepository(tx)

		if err := txCommentRepo.DeleteByGroup(ctx, groupID); err != nil {
			return fmt.Errorf("failed to delete comments of group %d: %w", groupID, err)
		}
		if err := tx.Where("post_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.Post{}).Select("id").Where("group_id = ?", groupID),
		).Delete(&models.PostLike{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes of group %d: %w", groupID, err)
		}
		if err := txPostRepo.DeleteByGroup(ctx, groupID); err != nil {
			return fmt.Errorf("failed to delete posts of group %d: %w", groupID, err)
		}
		if err := tx.Where("group_id = ?", groupID).Delete(&models.GroupMember{}).Error; err != nil {
			return fmt.Errorf("failed to delete members of group %d: %w", groupID, err)
		}
		if err := txGroupRepo.DeleteGroup(ctx, groupID); err != nil {
			return fmt.Errorf("failed to delete group %d: %w", groupID, err)
		}
		return nil
	})
}

// JoinGroup adds the user to the group's member set. Joining a group the user
// is already in is a no-op.
func (s *groupService) JoinGroup(ctx context.Context, userID, groupID uint) error {
	_, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return err
	}

	member := &models.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		JoinedAt: time.Now(),
	}
	if err := s.groupRepo.AddMember(ctx, member); err != nil {
		return fmt.Errorf("failed to add user %d to group %d: %w", userID, groupID, err)
	}
	log.Printf("User %d joined group %d", userID, groupID)
	return nil
}

// LeaveGroup removes the user from the group's member set. Leaving a group
// the user is not in is a no-op; a group may end up with zero members.
func (s *groupService) LeaveGroup(ctx context.Context, userID, groupID uint) error {
	_, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return err
	}

	if err := s.groupRepo.RemoveMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("failed to remove user %d from group %d: %w", userID, groupID, err)
	}
	return nil
}

// GetGroupMembers retrieves the group's membership rows.
func (s *groupService) GetGroupMembers(ctx context.Context, groupID uint) ([]*models.GroupMember, error) {
	return s.groupRepo.GetGroupMembers(ctx, groupID)
}

// GetUserGroups retrieves every group the user belongs to.
func (s *groupService) GetUserGroups(ctx context.Context, userID uint) ([]*models.Group, error) {
	return s.groupRepo.GetUserGroups(ctx, userID)
}
