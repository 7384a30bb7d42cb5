package models

import "time"

// Post represents a piece of content published into a group.
//
// LikesTotal is denormalized alongside the post_likes rows; the two are only
// ever mutated together inside one transaction (see PostService.LikePost), so
// the counter cannot drift from the cardinality of the likers set.
type Post struct {
	BaseModel
	Title      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	LikesTotal int       `gorm:"not null;default:0" json:"likesTotal"`
	PubDate    time.Time `gorm:"not null" json:"pubDate"`
	AuthorID   uint      `gorm:"index;not null" json:"authorId"`
	GroupID    uint      `gorm:"index;not null" json:"groupId"`

	// Associations
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Group    Group     `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
}

// Summary returns the first 100 characters of the body for list views.
func (p *Post) Summary() string {
	if len(p.Body) <= 100 {
		return p.Body
	}
	return p.Body[:100]
}

// TableName specifies the table name for the Post model.
func (Post) TableName() string {
	return "posts"
}

// PostLike records that a user has liked a post. Membership is boolean, not
// counted per-user: at most one row exists per (post, user) pair and there is
// no unlike path.
type PostLike struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"postId"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	// Associations
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for the PostLike model.
func (PostLike) TableName() string {
	return "post_likes"
}
