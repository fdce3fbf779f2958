package models

// Property is a listing record. Only the owner may update or delete it.
type Property struct {
	BaseModel
	PropertyType                 string  `gorm:"not null;index" json:"propertyType"`
	Title                        string  `gorm:"not null" json:"title"`
	State                        string  `gorm:"not null;index" json:"state"`
	City                         string  `gorm:"not null;index" json:"city"`
	LocalArea                    string  `gorm:"not null;index" json:"localArea"`
	Bedrooms                     int     `gorm:"not null" json:"bedrooms"`
	Bathrooms                    int     `gorm:"not null" json:"bathrooms"`
	BachelorsAllowed             bool    `gorm:"default:false" json:"bachelorsAllowed"`
	NearbyRailwayStationDistance float64 `gorm:"not null" json:"nearbyRailwayStationDistance"`
	NearbyHospitalDistance       float64 `gorm:"not null" json:"nearbyHospitalDistance"`
	Price                        float64 `gorm:"not null" json:"price"`

	OwnerID string `gorm:"type:uuid;not null;index" json:"owner"`
	Owner   *User  `gorm:"foreignKey:OwnerID" json:"-"`

	// Users that liked this listing, derived from property_likes.
	Likers []User `gorm:"many2many:property_likes;" json:"likes,omitempty"`
}
