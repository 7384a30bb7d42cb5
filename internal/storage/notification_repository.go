package storage

import (
	"context"

	"gorm.io/gorm"

	"social-go/internal/models"
)

// NotificationRepository defines the interface for notification data operations.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uint) (*models.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uint, limit int) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id uint) error
}

// gormNotificationRepository implements NotificationRepository using GORM.
type gormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM-based NotificationRepository.
func NewGormNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

// Create persists a notification row.
func (r *gormNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

// GetByID retrieves a notification by ID.
func (r *gormNotificationRepository) GetByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).First(&notification, id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListByRecipient retrieves a user's notifications, newest first.
func (r *gormNotificationRepository) ListByRecipient(ctx context.Context, recipientID uint, limit int) ([]*models.Notification, error) {
	var notifications []*models.Notification
	dbQuery := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Preload("Actor").
		Order("created_at DESC")
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}
	err := dbQuery.Find(&notifications).Error
	return notifications, err
}

// MarkRead flags a notification as read.
func (r *gormNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
