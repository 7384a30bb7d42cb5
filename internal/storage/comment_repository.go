package storage

import (
	"context"

	"gorm.io/gorm"

	"social-go/internal/models"
)

// CommentRepository defines the interface for comment data operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Delete(ctx context.Context, id uint) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	DeleteByPost(ctx context.Context, postID uint) error
	DeleteByGroup(ctx context.Context, groupID uint) error
}

// gormCommentRepository implements CommentRepository using GORM.
type gormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GORM-based CommentRepository.
func NewGormCommentRepository(db *gorm.DB) CommentRepository {
	return &gormCommentRepository{db: db}
}

// Create creates a new comment.
func (r *gormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetByID retrieves a comment by ID.
func (r *gormCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete hard-deletes a comment. No cascade.
func (r *gormCommentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Comment{}, id).Error
}

// ListByPost retrieves all comments on a post, oldest first.
func (r *gormCommentRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("pub_date ASC").
		Find(&comments).Error
	return comments, err
}

// DeleteByPost hard-deletes all comments of a post.
func (r *gormCommentRepository) DeleteByPost(ctx context.Context, postID uint) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("post_id = ?", postID).
		Delete(&models.Comment{}).Error
}

// DeleteByGroup hard-deletes all comments denormalized to a group.
func (r *gormCommentRepository) DeleteByGroup(ctx context.Context, groupID uint) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("group_id = ?", groupID).
		Delete(&models.Comment{}).Error
}
