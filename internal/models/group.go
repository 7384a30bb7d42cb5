package models

import "time"

// Group represents a community that users join and post into.
type Group struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	ImageURL    string `gorm:"type:varchar(255);not null" json:"imageUrl"`

	// Associations
	Members []GroupMember `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Posts   []Post        `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}

// TableName specifies the table name for the Group model.
func (Group) TableName() string {
	return "groups"
}

// GroupMember links a user to a group. Membership is a plain set: joining
// twice is a no-op and a group may have zero members.
type GroupMember struct {
	GroupID  uint      `gorm:"primaryKey;autoIncrement:false" json:"groupId"`
	UserID   uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`

	// Associations
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Group Group `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
}

// TableName specifies the table name for the GroupMember model.
func (GroupMember) TableName() string {
	return "group_members"
}
