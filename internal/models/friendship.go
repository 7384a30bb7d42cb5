package models

// Friendship represents a friendship between two users as a single undirected
// edge. To avoid duplicates and simplify queries, UserID1 is always less than
// UserID2; both mutations of a friendship change run on this one row, so the
// relation can never be left half-applied.
type Friendship struct {
	BaseModel
	UserID1 uint `gorm:"not null;uniqueIndex:idx_friendship_users"` // ID of the first user
	User1   User `gorm:"foreignKey:UserID1;constraint:OnDelete:CASCADE"`
	UserID2 uint `gorm:"not null;uniqueIndex:idx_friendship_users"` // ID of the second user
	User2   User `gorm:"foreignKey:UserID2;constraint:OnDelete:CASCADE"`
}

// EnsureCanonicalOrder sets UserID1 to the smaller ID and UserID2 to the larger ID.
// This must be called before creating or looking up a Friendship record.
func (f *Friendship) EnsureCanonicalOrder() {
	if f.UserID1 > f.UserID2 {
		f.UserID1, f.UserID2 = f.UserID2, f.UserID1
	}
}

// TableName specifies the table name for the Friendship model.
func (Friendship) TableName() string {
	return "friendships"
}
