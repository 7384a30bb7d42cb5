package models

import "time"

// Comment represents a reply to a post.
//
// GroupID mirrors the parent post's group at creation time so group pages can
// query comments without joining through posts; the write path keeps it
// consistent.
type Comment struct {
	BaseModel
	Body     string    `gorm:"type:text;not null" json:"body"`
	PubDate  time.Time `gorm:"not null" json:"pubDate"`
	AuthorID uint      `gorm:"index;not null" json:"authorId"`
	PostID   uint      `gorm:"index;not null" json:"postId"`
	GroupID  uint      `gorm:"index;not null" json:"groupId"`

	// Associations
	Author User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Post   Post  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	Group  Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
}

// TableName specifies the table name for the Comment model.
func (Comment) TableName() string {
	return "comments"
}
