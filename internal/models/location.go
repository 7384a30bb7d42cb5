package models

// Location is a user's declared city and geographic position. A user may
// declare any number of locations; there is no uniqueness constraint.
type Location struct {
	BaseModel
	UserID    uint    `gorm:"index;not null" json:"userId"`
	City      string  `gorm:"type:varchar(255);not null" json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

// TableName specifies the table name for the Location model.
func (Location) TableName() string {
	return "locations"
}
