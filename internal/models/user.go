package models

// User represents an account in the user directory. Accounts are created at
// signup and never deleted in-app.
type User struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"` // never exposed
	Email        string `gorm:"type:varchar(100);uniqueIndex" json:"email,omitempty"`
	Nickname     string `gorm:"type:varchar(100)" json:"nickname,omitempty"`
	AvatarURL    string `gorm:"type:varchar(255)" json:"avatarUrl,omitempty"`
	Bio          string `gorm:"type:text" json:"bio,omitempty"`

	// Associations
	Groups    []*Group    `gorm:"many2many:group_members;" json:"groups,omitempty"`
	Posts     []Post      `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
	Images    []UserImage `gorm:"foreignKey:UserID" json:"images,omitempty"`
	Locations []Location  `gorm:"foreignKey:UserID" json:"locations,omitempty"`
}

// UserBasicInfo holds minimal public information about a user.
// Used wherever a full User row would leak fields the caller has no use for,
// e.g. friend lists and the profile page's user directory.
type UserBasicInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Nickname  string `json:"nickname,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
