package models

// UserType distinguishes the two account kinds.
type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
)

// User is the identity record. Email is stored lower-cased and unique;
// PasswordHash is never serialized into responses.
type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string   `gorm:"not null" json:"firstName"`
	LastName     string   `json:"lastName"`
	PhoneNumber  string   `gorm:"not null" json:"phoneNumber"`
	UserType     UserType `gorm:"type:varchar(10);not null" json:"userType"`
	PasswordHash string   `gorm:"not null" json:"-"`

	// Watchlist. The edge lives once in the property_likes join table;
	// Property.Likers is the same edge seen from the other side.
	Likes []Property `gorm:"many2many:property_likes;" json:"likes,omitempty"`
}
