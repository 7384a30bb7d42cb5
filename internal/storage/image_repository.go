package storage

import (
	"context"

	"gorm.io/gorm"

	"social-go/internal/models"
)

// ImageRepository defines the interface for profile image rows. The list is
// append-only; there is no update or delete path.
type ImageRepository interface {
	Create(ctx context.Context, image *models.UserImage) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]*models.UserImage, error)
}

// gormImageRepository implements ImageRepository using GORM.
type gormImageRepository struct {
	db *gorm.DB
}

// NewGormImageRepository creates a new GORM-based ImageRepository.
func NewGormImageRepository(db *gorm.DB) ImageRepository {
	return &gormImageRepository{db: db}
}

// Create appends an image row.
func (r *gormImageRepository) Create(ctx context.Context, image *models.UserImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// ListByUser retrieves up to limit images of a user in insertion order.
// limit <= 0 means no limit.
func (r *gormImageRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*models.UserImage, error) {
	var images []*models.UserImage
	dbQuery := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	err := dbQuery.Find(&images).Error
	return images, err
}
