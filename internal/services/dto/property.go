package dto

import (
	"time"

	"rentify_backend/internal/models"
)

type PostPropertyRequest struct {
	PropertyType                 string  `json:"propertyType" validate:"required"`
	Title                        string  `json:"title" validate:"required"`
	State                        string  `json:"state" validate:"required"`
	City                         string  `json:"city" validate:"required"`
	LocalArea                    string  `json:"localArea" validate:"required"`
	Bedrooms                     int     `json:"bedrooms" validate:"required"`
	Bathrooms                    int     `json:"bathrooms" validate:"required"`
	BachelorsAllowed             bool    `json:"bachelorsAllowed"`
	NearbyRailwayStationDistance float64 `json:"nearbyRailwayStationDistance" validate:"required"`
	NearbyHospitalDistance       float64 `json:"nearbyHospitalDistance" validate:"required"`
	Price                        float64 `json:"price" validate:"required"`
}

// UpdatePropertyRequest carries a partial update; only present fields are
// applied.
type UpdatePropertyRequest struct {
	PropertyType                 *string  `json:"propertyType" validate:"omitempty"`
	Title                        *string  `json:"title" validate:"omitempty"`
	State                        *string  `json:"state" validate:"omitempty"`
	City                         *string  `json:"city" validate:"omitempty"`
	LocalArea                    *string  `json:"localArea" validate:"omitempty"`
	Bedrooms                     *int     `json:"bedrooms" validate:"omitempty,min=1"`
	Bathrooms                    *int     `json:"bathrooms" validate:"omitempty,min=1"`
	BachelorsAllowed             *bool    `json:"bachelorsAllowed"`
	NearbyRailwayStationDistance *float64 `json:"nearbyRailwayStationDistance" validate:"omitempty"`
	NearbyHospitalDistance       *float64 `json:"nearbyHospitalDistance" validate:"omitempty"`
	Price                        *float64 `json:"price" validate:"omitempty,min=0"`
}

type FilterPropertiesRequest struct {
	PropertyType     string   `json:"propertyType" validate:"required"`
	State            string   `json:"state" validate:"required"`
	City             string   `json:"city" validate:"required"`
	Bedrooms         *int     `json:"bedrooms"`
	Bathrooms        *int     `json:"bathrooms"`
	BachelorsAllowed *bool    `json:"bachelorsAllowed"`
	MinPrice         *float64 `json:"minPrice"`
	MaxPrice         *float64 `json:"maxPrice"`
}

type SendOwnerInfoRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	BuyerID    string `json:"buyerId" validate:"required"`
}

type ToggleLikeRequest struct {
	PropertyID string `json:"propertyId" validate:"required"`
	UserID     string `json:"userId" validate:"required"`
}

// PropertyResponse is the full listing shape returned to its owner and in
// watchlist/like responses. Likes holds liker user IDs.
type PropertyResponse struct {
	ID                           string    `json:"id"`
	PropertyType                 string    `json:"propertyType"`
	Title                        string    `json:"title"`
	State                        string    `json:"state"`
	City                         string    `json:"city"`
	LocalArea                    string    `json:"localArea"`
	Bedrooms                     int       `json:"bedrooms"`
	Bathrooms                    int       `json:"bathrooms"`
	BachelorsAllowed             bool      `json:"bachelorsAllowed"`
	NearbyRailwayStationDistance float64   `json:"nearbyRailwayStationDistance"`
	NearbyHospitalDistance       float64   `json:"nearbyHospitalDistance"`
	Price                        float64   `json:"price"`
	Owner                        string    `json:"owner"`
	Likes                        []string  `json:"likes"`
	CreatedAt                    time.Time `json:"createdAt"`
	UpdatedAt                    time.Time `json:"updatedAt"`
}

// PublicPropertyResponse is the anonymous get-by-id shape: owner, likes,
// timestamps and id are stripped.
type PublicPropertyResponse struct {
	PropertyType                 string  `json:"propertyType"`
	Title                        string  `json:"title"`
	State                        string  `json:"state"`
	City                         string  `json:"city"`
	LocalArea                    string  `json:"localArea"`
	Bedrooms                     int     `json:"bedrooms"`
	Bathrooms                    int     `json:"bathrooms"`
	BachelorsAllowed             bool    `json:"bachelorsAllowed"`
	NearbyRailwayStationDistance float64 `json:"nearbyRailwayStationDistance"`
	NearbyHospitalDistance       float64 `json:"nearbyHospitalDistance"`
	Price                        float64 `json:"price"`
}

// OwnerContact is the owner slice attached to filter results.
type OwnerContact struct {
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// FilteredPropertyResponse is a listing with the owner contact populated.
type FilteredPropertyResponse struct {
	PropertyResponse
	OwnerContact *OwnerContact `json:"ownerContact,omitempty"`
}

// NewPropertyResponse maps a model to the full client shape.
func NewPropertyResponse(property *models.Property) *PropertyResponse {
	likes := make([]string, 0, len(property.Likers))
	for _, liker := range property.Likers {
		likes = append(likes, liker.ID)
	}

	return &PropertyResponse{
		ID:                           property.ID,
		PropertyType:                 property.PropertyType,
		Title:                        property.Title,
		State:                        property.State,
		City:                         property.City,
		LocalArea:                    property.LocalArea,
		Bedrooms:                     property.Bedrooms,
		Bathrooms:                    property.Bathrooms,
		BachelorsAllowed:             property.BachelorsAllowed,
		NearbyRailwayStationDistance: property.NearbyRailwayStationDistance,
		NearbyHospitalDistance:       property.NearbyHospitalDistance,
		Price:                        property.Price,
		Owner:                        property.OwnerID,
		Likes:                        likes,
		CreatedAt:                    property.CreatedAt,
		UpdatedAt:                    property.UpdatedAt,
	}
}

// NewPublicPropertyResponse maps a model to the stripped public shape.
func NewPublicPropertyResponse(property *models.Property) *PublicPropertyResponse {
	return &PublicPropertyResponse{
		PropertyType:                 property.PropertyType,
		Title:                        property.Title,
		State:                        property.State,
		City:                         property.City,
		LocalArea:                    property.LocalArea,
		Bedrooms:                     property.Bedrooms,
		Bathrooms:                    property.Bathrooms,
		BachelorsAllowed:             property.BachelorsAllowed,
		NearbyRailwayStationDistance: property.NearbyRailwayStationDistance,
		NearbyHospitalDistance:       property.NearbyHospitalDistance,
		Price:                        property.Price,
	}
}

// NewFilteredPropertyResponse maps a model with preloaded owner.
func NewFilteredPropertyResponse(property *models.Property) *FilteredPropertyResponse {
	resp := &FilteredPropertyResponse{
		PropertyResponse: *NewPropertyResponse(property),
	}
	if property.Owner != nil {
		resp.OwnerContact = &OwnerContact{
			Email:       property.Owner.Email,
			FirstName:   property.Owner.FirstName,
			LastName:    property.Owner.LastName,
			PhoneNumber: property.Owner.PhoneNumber,
		}
	}
	return resp
}
