package services

import (
	"encoding/json"
	"testing"

	"social-go/internal/models"

	confluent "github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityMessage(t *testing.T, event ActivityEvent) *confluent.Message {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	topic := "social-activity-test"
	return &confluent.Message{
		TopicPartition: confluent.TopicPartition{Topic: &topic},
		Value:          payload,
	}
}

func TestProcessActivityEventStoresNotification(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")

	msg := activityMessage(t, ActivityEvent{
		Kind:        models.NotificationPostLiked,
		ActorID:     bob.ID,
		RecipientID: alice.ID,
		TargetType:  "post",
		TargetID:    42,
	})
	require.NoError(t, s.notification.ProcessActivityEvent(testCtx(), msg))

	notifications, err := s.notification.ListNotifications(testCtx(), alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationPostLiked, notifications[0].Kind)
	assert.Equal(t, bob.ID, notifications[0].ActorID)
	assert.False(t, notifications[0].IsRead)
}

func TestProcessActivityEventDropsMalformedPayload(t *testing.T) {
	s := newTestServices(t)
	topic := "social-activity-test"
	msg := &confluent.Message{
		TopicPartition: confluent.TopicPartition{Topic: &topic},
		Value:          []byte("not json"),
	}

	// Malformed events are dropped, not retried.
	assert.NoError(t, s.notification.ProcessActivityEvent(testCtx(), msg))

	var count int64
	require.NoError(t, s.db.Model(&models.Notification{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestServices(t)
	alice := createTestUser(t, s.db, "alice")
	bob := createTestUser(t, s.db, "bob")

	msg := activityMessage(t, ActivityEvent{
		Kind:        models.NotificationFriendAdded,
		ActorID:     bob.ID,
		RecipientID: alice.ID,
	})
	require.NoError(t, s.notification.ProcessActivityEvent(testCtx(), msg))

	notifications, err := s.notification.ListNotifications(testCtx(), alice.ID, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	require.NoError(t, s.notification.MarkNotificationRead(testCtx(), alice.ID, notifications[0].ID))

	notifications, err = s.notification.ListNotifications(testCtx(), alice.ID, 10)
	require.NoError(t, err)
	assert.True(t, notifications[0].IsRead)

	// Another user's notification reads as not found.
	err = s.notification.MarkNotificationRead(testCtx(), bob.ID, notifications[0].ID)
	assert.Error(t, err)
}
