package models

// UserImage is an uploaded picture attached to a user's profile. The list is
// append-only; rows are never edited in-app.
type UserImage struct {
	BaseModel
	UserID   uint   `gorm:"index;not null" json:"userId"`
	URL      string `gorm:"type:varchar(255);not null" json:"url"`
	Path     string `gorm:"type:varchar(255)" json:"-"` // storage-internal identifier
	FileName string `gorm:"type:varchar(255)" json:"fileName,omitempty"`
	Size     int64  `json:"size,omitempty"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for the UserImage model.
func (UserImage) TableName() string {
	return "user_images"
}
