package services

import (
	"net/http"

	"gorm.io/gorm"

	"rentify_backend/internal/email"
	"rentify_backend/internal/models"
	"rentify_backend/internal/repositories"
	"rentify_backend/internal/services/dto"
	"rentify_backend/pkg/apperrors"
)

// PropertyService covers listing CRUD, filtering, the like toggle and the
// owner/buyer introduction emails.
type PropertyService interface {
	PostProperty(db *gorm.DB, ownerID string, req *dto.PostPropertyRequest) (*dto.PropertyResponse, error)
	GetProperties(db *gorm.DB, ownerID string) ([]*dto.PropertyResponse, error)
	DeleteProperty(db *gorm.DB, callerID, propertyID string) error
	GetPropertyByID(db *gorm.DB, propertyID string) (*dto.PublicPropertyResponse, error)
	UpdateProperty(db *gorm.DB, callerID, propertyID string, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error)
	FilterProperties(db *gorm.DB, req *dto.FilterPropertiesRequest) ([]*dto.FilteredPropertyResponse, error)
	SendOwnerInfo(db *gorm.DB, req *dto.SendOwnerInfoRequest) error
	ToggleLike(db *gorm.DB, req *dto.ToggleLikeRequest) (*dto.PropertyResponse, bool, error)
	GetWatchlist(db *gorm.DB, userID string) ([]*dto.PropertyResponse, error)
}

type PropertyServiceImpl struct {
	propertyRepo  repositories.PropertyRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewPropertyService(
	propertyRepo repositories.PropertyRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) PropertyService {
	return &PropertyServiceImpl{
		propertyRepo:  propertyRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// PostProperty creates a listing owned by the caller.
func (s *PropertyServiceImpl) PostProperty(db *gorm.DB, ownerID string, req *dto.PostPropertyRequest) (*dto.PropertyResponse, error) {
	property := &models.Property{
		PropertyType:                 req.PropertyType,
		Title:                        req.Title,
		State:                        req.State,
		City:                         req.City,
		LocalArea:                    req.LocalArea,
		Bedrooms:                     req.Bedrooms,
		Bathrooms:                    req.Bathrooms,
		BachelorsAllowed:             req.BachelorsAllowed,
		NearbyRailwayStationDistance: req.NearbyRailwayStationDistance,
		NearbyHospitalDistance:       req.NearbyHospitalDistance,
		Price:                        req.Price,
		OwnerID:                      ownerID,
	}

	if err := s.propertyRepo.Create(db, property); err != nil {
		return nil, apperrors.Wrap(err, http.StatusInternalServerError, apperrors.CodeDatabaseError, "Failed to add property.")
	}

	return dto.NewPropertyResponse(property), nil
}

// GetProperties lists the caller's own listings.
func (s *PropertyServiceImpl) GetProperties(db *gorm.DB, ownerID string) ([]*dto.PropertyResponse, error) {
	properties, err := s.propertyRepo.FindByOwner(db, ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, dto.NewPropertyResponse(&properties[i]))
	}
	return responses, nil
}

// DeleteProperty removes a listing. Missing listing and foreign listing
// fail differently (404 vs 403), matching the API contract.
func (s *PropertyServiceImpl) DeleteProperty(db *gorm.DB, callerID, propertyID string) error {
	property, err := s.propertyRepo.FindByID(db, propertyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return apperrors.NotFound("Property not found")
		}
		return apperrors.InternalError(err)
	}

	if property.OwnerID != callerID {
		return apperrors.Forbidden("You are not authorized to delete this property")
	}

	if err := s.propertyRepo.Delete(db, propertyID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// GetPropertyByID returns the public listing shape.
func (s *PropertyServiceImpl) GetPropertyByID(db *gorm.DB, propertyID string) (*dto.PublicPropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(db, propertyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.NotFound("Property not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPublicPropertyResponse(property), nil
}

// UpdateProperty applies a partial update. Owner-only, like delete.
func (s *PropertyServiceImpl) UpdateProperty(db *gorm.DB, callerID, propertyID string, req *dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	property, err := s.propertyRepo.FindByID(db, propertyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, apperrors.NotFound("Property not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if property.OwnerID != callerID {
		return nil, apperrors.Forbidden("You are not authorized to update this property")
	}

	applyPropertyUpdate(property, req)

	if err := s.propertyRepo.Save(db, property); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPropertyResponse(property), nil
}

func applyPropertyUpdate(property *models.Property, req *dto.UpdatePropertyRequest) {
	if req.PropertyType != nil {
		property.PropertyType = *req.PropertyType
	}
	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.State != nil {
		property.State = *req.State
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.LocalArea != nil {
		property.LocalArea = *req.LocalArea
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.BachelorsAllowed != nil {
		property.BachelorsAllowed = *req.BachelorsAllowed
	}
	if req.NearbyRailwayStationDistance != nil {
		property.NearbyRailwayStationDistance = *req.NearbyRailwayStationDistance
	}
	if req.NearbyHospitalDistance != nil {
		property.NearbyHospitalDistance = *req.NearbyHospitalDistance
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
}

// FilterProperties runs the listing search; matches carry owner contact
// details.
func (s *PropertyServiceImpl) FilterProperties(db *gorm.DB, req *dto.FilterPropertiesRequest) ([]*dto.FilteredPropertyResponse, error) {
	filter := repositories.PropertyFilter{
		PropertyType:     req.PropertyType,
		State:            req.State,
		City:             req.City,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		BachelorsAllowed: req.BachelorsAllowed,
		MinPrice:         req.MinPrice,
		MaxPrice:         req.MaxPrice,
	}

	properties, err := s.propertyRepo.Filter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.FilteredPropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, dto.NewFilteredPropertyResponse(&properties[i]))
	}
	return responses, nil
}

// SendOwnerInfo introduces a buyer and an owner to each other over email.
func (s *PropertyServiceImpl) SendOwnerInfo(db *gorm.DB, req *dto.SendOwnerInfoRequest) error {
	property, err := s.propertyRepo.FindByIDWithOwner(db, req.PropertyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return apperrors.NotFound("Property or buyer not found")
		}
		return apperrors.InternalError(err)
	}
	if property.Owner == nil {
		return apperrors.NotFound("Property or buyer not found")
	}

	buyer, err := s.userRepo.FindByID(db, req.BuyerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.NotFound("Property or buyer not found")
		}
		return apperrors.InternalError(err)
	}

	buyerContact := contactOf(buyer)
	ownerContact := contactOf(property.Owner)

	if err := s.emailProvider.SendOwnerInfo(buyerContact, ownerContact, property.Title); err != nil {
		return apperrors.Wrap(err, http.StatusInternalServerError, apperrors.CodeExternalServiceError, "Error sending email")
	}
	if err := s.emailProvider.SendBuyerInterest(ownerContact, buyerContact, property.Title); err != nil {
		return apperrors.Wrap(err, http.StatusInternalServerError, apperrors.CodeExternalServiceError, "Error sending email")
	}
	return nil
}

func contactOf(user *models.User) email.ContactInfo {
	return email.ContactInfo{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
	}
}

// ToggleLike flips the watchlist edge and reports the new state. Toggling
// twice always restores the original state.
func (s *PropertyServiceImpl) ToggleLike(db *gorm.DB, req *dto.ToggleLikeRequest) (*dto.PropertyResponse, bool, error) {
	if _, err := s.propertyRepo.FindByID(db, req.PropertyID); err != nil {
		if apperrors.Is(err, repositories.ErrPropertyNotFound) {
			return nil, false, apperrors.NotFound("Property or user not found")
		}
		return nil, false, apperrors.InternalError(err)
	}
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, false, apperrors.NotFound("Property or user not found")
		}
		return nil, false, apperrors.InternalError(err)
	}

	liked, err := s.propertyRepo.ToggleLike(db, req.PropertyID, req.UserID)
	if err != nil {
		return nil, false, apperrors.InternalError(err)
	}

	property, err := s.propertyRepo.FindByIDWithLikers(db, req.PropertyID)
	if err != nil {
		return nil, false, apperrors.InternalError(err)
	}

	return dto.NewPropertyResponse(property), liked, nil
}

// GetWatchlist returns the caller's liked listings.
func (s *PropertyServiceImpl) GetWatchlist(db *gorm.DB, userID string) ([]*dto.PropertyResponse, error) {
	properties, err := s.userRepo.FindWatchlist(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NotFound("User not found.")
		}
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.PropertyResponse, 0, len(properties))
	for i := range properties {
		responses = append(responses, dto.NewPropertyResponse(&properties[i]))
	}
	return responses, nil
}
