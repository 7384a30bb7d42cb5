package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-go/internal/models"
)

// FriendshipRepository defines the interface for friendship data operations.
// All lookups and mutations operate on the canonical (smaller, larger) pair.
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	Remove(ctx context.Context, userID1, userID2 uint) (bool, error)
	AreUsersFriends(ctx context.Context, userID1, userID2 uint) (bool, error)
	GetFriendIDs(ctx context.Context, userID uint) ([]uint, error)
}

type gormFriendshipRepository struct {
	db *gorm.DB
}

// NewGormFriendshipRepository creates a new GormFriendshipRepository.
func NewGormFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &gormFriendshipRepository{db: db}
}

// Create creates a new friendship record. It assumes
// friendship.EnsureCanonicalOrder() has been called before. Creating an edge
// that already exists is a no-op (set semantics).
func (r *gormFriendshipRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(friendship).Error
}

// Remove deletes the friendship edge between the two users. Returns whether
// an edge actually existed; removing a non-existent friendship is tolerated.
func (r *gormFriendshipRepository) Remove(ctx context.Context, userID1, userID2 uint) (bool, error) {
	u1, u2 := userID1, userID2
	if u1 > u2 {
		u1, u2 = u2, u1
	}
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("user_id1 = ? AND user_id2 = ?", u1, u2).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AreUsersFriends checks if two users are friends.
func (r *gormFriendshipRepository) AreUsersFriends(ctx context.Context, userID1, userID2 uint) (bool, error) {
	u1, u2 := userID1, userID2
	if u1 > u2 {
		u1, u2 = u2, u1 // canonical order for the query
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id1 = ? AND user_id2 = ?", u1, u2).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFriendIDs retrieves the IDs of every user who is friends with userID.
// The user may sit on either side of the edge, so both columns are plucked.
func (r *gormFriendshipRepository) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var idsPart1 []uint
	err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id1 = ?", userID).
		Pluck("user_id2", &idsPart1).Error
	if err != nil {
		return nil, err
	}

	var idsPart2 []uint
	err = r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_id2 = ?", userID).
		Pluck("user_id1", &idsPart2).Error
	if err != nil {
		return nil, err
	}

	return append(idsPart1, idsPart2...), nil
}
