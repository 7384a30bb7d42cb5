package storage

import (
	"context"

	"gorm.io/gorm"

	"social-go/internal/models"
)

// LocationRepository defines the interface for location data operations.
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uint) (*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	ListByUser(ctx context.Context, userID uint) ([]*models.Location, error)
}

// gormLocationRepository implements LocationRepository using GORM.
type gormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM-based LocationRepository.
func NewGormLocationRepository(db *gorm.DB) LocationRepository {
	return &gormLocationRepository{db: db}
}

// Create creates a new location row.
func (r *gormLocationRepository) Create(ctx context.Context, location *models.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

// GetByID retrieves a location by ID.
func (r *gormLocationRepository) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	err := r.db.WithContext(ctx).First(&location, id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// Update saves a modified location.
func (r *gormLocationRepository) Update(ctx context.Context, location *models.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

// ListByUser retrieves all locations a user has declared, insertion order.
func (r *gormLocationRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Location, error) {
	var locations []*models.Location
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&locations).Error
	return locations, err
}
