package repositories

import (
	"errors"

	"gorm.io/gorm"

	"rentify_backend/internal/models"
)

var ErrPropertyNotFound = errors.New("property not found")

// PropertyFilter carries the listing search criteria. The three string
// fields are mandatory; pointer fields participate only when set.
type PropertyFilter struct {
	PropertyType     string
	State            string
	City             string
	Bedrooms         *int
	Bathrooms        *int
	BachelorsAllowed *bool
	MinPrice         *float64
	MaxPrice         *float64
}

// PropertyRepository persists listings and the like edge.
type PropertyRepository interface {
	Create(db *gorm.DB, property *models.Property) error
	FindByID(db *gorm.DB, id string) (*models.Property, error)
	FindByIDWithOwner(db *gorm.DB, id string) (*models.Property, error)
	FindByIDWithLikers(db *gorm.DB, id string) (*models.Property, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.Property, error)
	Save(db *gorm.DB, property *models.Property) error
	Delete(db *gorm.DB, id string) error
	Filter(db *gorm.DB, filter PropertyFilter) ([]models.Property, error)
	ToggleLike(db *gorm.DB, propertyID, userID string) (liked bool, err error)
}

type PropertyRepositoryImpl struct{}

func NewPropertyRepository() PropertyRepository {
	return &PropertyRepositoryImpl{}
}

func (r *PropertyRepositoryImpl) Create(db *gorm.DB, property *models.Property) error {
	return db.Create(property).Error
}

func (r *PropertyRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	if err := db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) FindByIDWithOwner(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	if err := db.Preload("Owner").First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) FindByIDWithLikers(db *gorm.DB, id string) (*models.Property, error) {
	var property models.Property
	if err := db.Preload("Likers").First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.Property, error) {
	var properties []models.Property
	if err := db.Where("owner_id = ?", ownerID).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepositoryImpl) Save(db *gorm.DB, property *models.Property) error {
	return db.Save(property).Error
}

func (r *PropertyRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// Filter matches listings on the mandatory type/state/city triple plus any
// optional bounds, with the owner preloaded for contact details.
func (r *PropertyRepositoryImpl) Filter(db *gorm.DB, filter PropertyFilter) ([]models.Property, error) {
	query := db.Preload("Owner").
		Where("property_type = ?", filter.PropertyType).
		Where("state = ?", filter.State).
		Where("city = ?", filter.City)

	if filter.Bedrooms != nil {
		query = query.Where("bedrooms = ?", *filter.Bedrooms)
	}
	if filter.Bathrooms != nil {
		query = query.Where("bathrooms = ?", *filter.Bathrooms)
	}
	if filter.BachelorsAllowed != nil {
		query = query.Where("bachelors_allowed = ?", *filter.BachelorsAllowed)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// ToggleLike flips the like edge between a user and a property. The edge
// lives in a single join table, so both User.Likes and Property.Likers
// stay mirrored by construction, and the check-then-flip pair runs in one
// transaction so concurrent toggles cannot interleave.
func (r *PropertyRepositoryImpl) ToggleLike(db *gorm.DB, propertyID, userID string) (bool, error) {
	var liked bool

	err := db.Transaction(func(tx *gorm.DB) error {
		property := models.Property{BaseModel: models.BaseModel{ID: propertyID}}
		user := models.User{BaseModel: models.BaseModel{ID: userID}}

		var count int64
		if err := tx.Table("property_likes").
			Where("property_id = ? AND user_id = ?", propertyID, userID).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			liked = false
			return tx.Model(&property).Association("Likers").Delete(&user)
		}

		liked = true
		return tx.Model(&property).Association("Likers").Append(&user)
	})

	return liked, err
}
