package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"social-go/internal/models"
)

// PostRepository defines the interface for post and like data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*models.Post, error)
	GetByTitle(ctx context.Context, title string) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	ListByGroup(ctx context.Context, groupID uint) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error)
	DeleteByGroup(ctx context.Context, groupID uint) error

	HasLiked(ctx context.Context, postID, userID uint) (bool, error)
	AddLike(ctx context.Context, like *models.PostLike) error
	GetLikerIDs(ctx context.Context, postID uint) ([]uint, error)
	CountLikers(ctx context.Context, postID uint) (int64, error)
}

// gormPostRepository implements PostRepository using GORM.
type gormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM-based PostRepository.
func NewGormPostRepository(db *gorm.DB) PostRepository {
	return &gormPostRepository{db: db}
}

// Create creates a new post.
func (r *gormPostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetByID retrieves a post by ID.
func (r *gormPostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByIDForUpdate retrieves a post by ID with a row-level lock. Must be
// called inside a transaction; the like path uses it so the read-check-write
// on the counter cannot interleave with a concurrent like. SQLite has no
// SELECT FOR UPDATE (its writes serialize anyway), so the clause is only
// applied on postgres.
func (r *gormPostRepository) GetByIDForUpdate(ctx context.Context, id uint) (*models.Post, error) {
	tx := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var post models.Post
	if err := tx.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByTitle retrieves a post by its globally unique title.
func (r *gormPostRepository) GetByTitle(ctx context.Context, title string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Where("title = ?", title).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update saves a modified post.
func (r *gormPostRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete hard-deletes a post row. Comment cascade is driven by the service.
func (r *gormPostRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.Post{}, id).Error
}

// ListByGroup retrieves all posts of a group, newest first.
func (r *gormPostRepository) ListByGroup(ctx context.Context, groupID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Preload("Author").
		Order("pub_date DESC").
		Find(&posts).Error
	return posts, err
}

// ListByAuthor retrieves all posts written by a user, newest first.
func (r *gormPostRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("pub_date DESC").
		Find(&posts).Error
	return posts, err
}

// DeleteByGroup hard-deletes all posts of a group.
func (r *gormPostRepository) DeleteByGroup(ctx context.Context, groupID uint) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("group_id = ?", groupID).
		Delete(&models.Post{}).Error
}

// HasLiked reports whether the user is already in the post's likers set.
func (r *gormPostRepository) HasLiked(ctx context.Context, postID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddLike inserts a likers-set row.
func (r *gormPostRepository) AddLike(ctx context.Context, like *models.PostLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// GetLikerIDs retrieves the IDs of every user who liked the post.
func (r *gormPostRepository) GetLikerIDs(ctx context.Context, postID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Pluck("user_id", &ids).Error
	return ids, err
}

// CountLikers returns the cardinality of the likers set.
func (r *gormPostRepository) CountLikers(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
