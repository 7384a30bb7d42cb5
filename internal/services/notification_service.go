package services

import (
	"context"
	"encoding/json"
	"log"

	"social-go/internal/models"
	"social-go/internal/storage"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"gorm.io/gorm"
)

// NotificationService persists activity events consumed from Kafka and serves
// the pull-based notification endpoints.
type NotificationService interface {
	// ProcessActivityEvent is the Kafka consumer handler. It must only return
	// an error for failures worth redelivering; malformed payloads are logged
	// and dropped so they do not wedge the partition.
	ProcessActivityEvent(ctx context.Context, msg *kafka.Message) error

	ListNotifications(ctx context.Context, recipientID uint, limit int) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, recipientID, notificationID uint) error
}

type notificationService struct {
	notificationRepo storage.NotificationRepository
}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService(notificationRepo storage.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// ProcessActivityEvent turns one consumed activity event into a Notification
// row for its recipient.
func (s *notificationService) ProcessActivityEvent(ctx context.Context, msg *kafka.Message) error {
	var event ActivityEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("Skipping malformed activity event at offset %v: %v", msg.TopicPartition.Offset, err)
		return nil
	}
	if event.RecipientID == 0 {
		log.Printf("Skipping activity event without recipient at offset %v", msg.TopicPartition.Offset)
		return nil
	}

	notification := &models.Notification{
		Kind:        event.Kind,
		ActorID:     event.ActorID,
		RecipientID: event.RecipientID,
		TargetType:  event.TargetType,
		TargetID:    event.TargetID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		// Returning the error leaves the offset uncommitted for redelivery.
		return err
	}

	log.Printf("Stored %s notification for user %d (actor %d)", event.Kind, event.RecipientID, event.ActorID)
	return nil
}

// ListNotifications retrieves the recipient's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, recipientID uint, limit int) ([]*models.Notification, error) {
	return s.notificationRepo.ListByRecipient(ctx, recipientID, limit)
}

// MarkNotificationRead marks one of the recipient's notifications as read.
// A notification belonging to someone else is treated as not found.
func (s *notificationService) MarkNotificationRead(ctx context.Context, recipientID, notificationID uint) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientID != recipientID {
		return gorm.ErrRecordNotFound
	}
	return s.notificationRepo.MarkRead(ctx, notificationID)
}
