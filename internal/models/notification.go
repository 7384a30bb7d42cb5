package models

// NotificationKind identifies the activity that produced a notification.
type NotificationKind string

const (
	NotificationFriendAdded    NotificationKind = "friend.added"
	NotificationPostLiked      NotificationKind = "post.liked"
	NotificationCommentCreated NotificationKind = "comment.created"
)

// Notification is a persisted activity event for a user. Rows are written by
// the Kafka consumer, never by the request that produced the activity.
type Notification struct {
	BaseModel
	Kind        NotificationKind `gorm:"type:varchar(30);not null;index" json:"kind"`
	ActorID     uint             `gorm:"index;not null" json:"actorId"`
	RecipientID uint             `gorm:"index;not null" json:"recipientId"`
	TargetType  string           `gorm:"type:varchar(20)" json:"targetType,omitempty"` // "post", "comment", "user"
	TargetID    uint             `json:"targetId,omitempty"`
	IsRead      bool             `gorm:"not null;default:false;index" json:"isRead"`

	// Associations
	Actor     User `gorm:"foreignKey:ActorID;constraint:OnDelete:CASCADE" json:"actor,omitempty"`
	Recipient User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
}

// TableName specifies the table name for the Notification model.
func (Notification) TableName() string {
	return "notifications"
}
