package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"social-go/internal/config"
	"social-go/internal/kafka"
	"social-go/internal/models"
)

// ActivityEvent is the Kafka payload describing one user-visible activity
// (friendship added, post liked, comment created). The notification consumer
// turns these into Notification rows.
type ActivityEvent struct {
	Kind        models.NotificationKind `json:"kind"`
	ActorID     uint                    `json:"actorId"`
	RecipientID uint                    `json:"recipientId"`
	TargetType  string                  `json:"targetType,omitempty"`
	TargetID    uint                    `json:"targetId,omitempty"`
	Timestamp   time.Time               `json:"timestamp"`
}

// publishActivity sends an activity event to the activity topic. Publish
// failures are logged and swallowed: the originating mutation has already
// committed and must not fail because the notification pipeline is down.
func publishActivity(ctx context.Context, producer kafka.MessageProducer, cfg config.KafkaConfig, event ActivityEvent) {
	if producer == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshalling activity event %s: %v", event.Kind, err)
		return
	}

	key := []byte(fmt.Sprintf("%d", event.RecipientID))
	if err := producer.SendMessage(ctx, cfg.ActivityTopic, key, payload); err != nil {
		log.Printf("Error producing activity event %s to topic %s: %v", event.Kind, cfg.ActivityTopic, err)
	}
}
