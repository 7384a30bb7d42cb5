package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-go/internal/models"
)

// GroupRepository defines the interface for group and membership data operations.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroupByID(ctx context.Context, id uint) (*models.Group, error)
	GetGroupByName(ctx context.Context, name string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]*models.Group, error)
	DeleteGroup(ctx context.Context, id uint) error

	AddMember(ctx context.Context, member *models.GroupMember) error
	GetMember(ctx context.Context, groupID uint, userID uint) (*models.GroupMember, error)
	RemoveMember(ctx context.Context, groupID uint, userID uint) error
	GetGroupMembers(ctx context.Context, groupID uint) ([]*models.GroupMember, error)
	CountMembers(ctx context.Context, groupID uint) (int64, error)
	GetUserGroups(ctx context.Context, userID uint) ([]*models.Group, error)
}

// gormGroupRepository implements GroupRepository using GORM.
type gormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GORM-based GroupRepository.
func NewGormGroupRepository(db *gorm.DB) GroupRepository {
	return &gormGroupRepository{db: db}
}

// CreateGroup creates a new group.
func (r *gormGroupRepository) CreateGroup(ctx context.Context, group *models.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

// GetGroupByID retrieves a group by ID with its members preloaded.
func (r *gormGroupRepository) GetGroupByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).Preload("Members.User").First(&group, id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetGroupByName retrieves a group by its unique name.
func (r *gormGroupRepository) GetGroupByName(ctx context.Context, name string) (*models.Group, error) {
	var group models.Group
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ListGroups retrieves every group, newest first.
func (r *gormGroupRepository) ListGroups(ctx context.Context) ([]*models.Group, error) {
	var groups []*models.Group
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&groups).Error
	return groups, err
}

// DeleteGroup hard-deletes a group row. Cascading of posts, comments and
// memberships is driven by the service inside one transaction.
func (r *gormGroupRepository) DeleteGroup(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Group{}, id).Error
}

// AddMember adds a member to a group. Adding an existing member is a no-op.
func (r *gormGroupRepository) AddMember(ctx context.Context, member *models.GroupMember) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(member).Error
}

// GetMember retrieves a specific membership row.
func (r *gormGroupRepository) GetMember(ctx context.Context, groupID uint, userID uint) (*models.GroupMember, error) {
	var member models.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveMember removes a member from a group. Removing a non-member is a no-op.
func (r *gormGroupRepository) RemoveMember(ctx context.Context, groupID uint, userID uint) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{}).Error
}

// GetGroupMembers retrieves all membership rows of a group, oldest first.
func (r *gormGroupRepository) GetGroupMembers(ctx context.Context, groupID uint) ([]*models.GroupMember, error) {
	var members []*models.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Preload("User").
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

// CountMembers returns the number of members in a group.
func (r *gormGroupRepository) CountMembers(ctx context.Context, groupID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GroupMember{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

// GetUserGroups retrieves every group the user is a member of.
func (r *gormGroupRepository) GetUserGroups(ctx context.Context, userID uint) ([]*models.Group, error) {
	var groups []*models.Group
	err := r.db.WithContext(ctx).
		Joins("JOIN group_members gm ON gm.group_id = groups.id").
		Where("gm.user_id = ?", userID).
		Find(&groups).Error
	return groups, err
}
