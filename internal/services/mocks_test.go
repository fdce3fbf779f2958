package services

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"rentify_backend/internal/email"
	"rentify_backend/internal/models"
	"rentify_backend/internal/repositories"
)

// fakeStore is a shared in-memory backing store for the repository fakes.
// The like edge is held once, mirroring the real join table.
type fakeStore struct {
	mu         sync.Mutex
	users      map[string]*models.User
	properties map[string]*models.Property
	likes      map[string]map[string]bool // propertyID -> userID -> liked
	nextID     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[string]*models.User),
		properties: make(map[string]*models.Property),
		likes:      make(map[string]map[string]bool),
	}
}

func (s *fakeStore) newID() string {
	s.nextID++
	return fmt.Sprintf("id-%04d", s.nextID)
}

type fakeUserRepo struct {
	store *fakeStore
}

var _ repositories.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, emailAddr string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == emailAddr {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = r.store.newID()
	}
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdatePasswordHash(_ *gorm.DB, userID, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) FindWatchlist(_ *gorm.DB, userID string) ([]models.Property, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[userID]; !ok {
		return nil, repositories.ErrUserNotFound
	}
	watchlist := []models.Property{}
	for propertyID, likers := range r.store.likes {
		if likers[userID] {
			if property, ok := r.store.properties[propertyID]; ok {
				watchlist = append(watchlist, *property)
			}
		}
	}
	return watchlist, nil
}

type fakePropertyRepo struct {
	store *fakeStore
}

var _ repositories.PropertyRepository = (*fakePropertyRepo)(nil)

func (r *fakePropertyRepo) Create(_ *gorm.DB, property *models.Property) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if property.ID == "" {
		property.ID = r.store.newID()
	}
	copied := *property
	r.store.properties[property.ID] = &copied
	return nil
}

func (r *fakePropertyRepo) FindByID(_ *gorm.DB, id string) (*models.Property, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	property, ok := r.store.properties[id]
	if !ok {
		return nil, repositories.ErrPropertyNotFound
	}
	copied := *property
	return &copied, nil
}

func (r *fakePropertyRepo) FindByIDWithOwner(_ *gorm.DB, id string) (*models.Property, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	property, ok := r.store.properties[id]
	if !ok {
		return nil, repositories.ErrPropertyNotFound
	}
	copied := *property
	if owner, ok := r.store.users[property.OwnerID]; ok {
		ownerCopy := *owner
		copied.Owner = &ownerCopy
	}
	return &copied, nil
}

func (r *fakePropertyRepo) FindByIDWithLikers(_ *gorm.DB, id string) (*models.Property, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	property, ok := r.store.properties[id]
	if !ok {
		return nil, repositories.ErrPropertyNotFound
	}
	copied := *property
	copied.Likers = nil
	for userID := range r.store.likes[id] {
		if user, ok := r.store.users[userID]; ok {
			copied.Likers = append(copied.Likers, *user)
		}
	}
	return &copied, nil
}

func (r *fakePropertyRepo) FindByOwner(_ *gorm.DB, ownerID string) ([]models.Property, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	properties := []models.Property{}
	for _, property := range r.store.properties {
		if property.OwnerID == ownerID {
			properties = append(properties, *property)
		}
	}
	return properties, nil
}

func (r *fakePropertyRepo) Save(_ *gorm.DB, property *models.Property) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *property
	r.store.properties[property.ID] = &copied
	return nil
}

func (r *fakePropertyRepo) Delete(_ *gorm.DB, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.properties[id]; !ok {
		return repositories.ErrPropertyNotFound
	}
	delete(r.store.properties, id)
	delete(r.store.likes, id)
	return nil
}

func (r *fakePropertyRepo) Filter(_ *gorm.DB, filter repositories.PropertyFilter) ([]models.Property, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	matches := []models.Property{}
	for _, property := range r.store.properties {
		if property.PropertyType != filter.PropertyType ||
			property.State != filter.State ||
			property.City != filter.City {
			continue
		}
		if filter.Bedrooms != nil && property.Bedrooms != *filter.Bedrooms {
			continue
		}
		if filter.Bathrooms != nil && property.Bathrooms != *filter.Bathrooms {
			continue
		}
		if filter.BachelorsAllowed != nil && property.BachelorsAllowed != *filter.BachelorsAllowed {
			continue
		}
		if filter.MinPrice != nil && property.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && property.Price > *filter.MaxPrice {
			continue
		}
		copied := *property
		if owner, ok := r.store.users[property.OwnerID]; ok {
			ownerCopy := *owner
			copied.Owner = &ownerCopy
		}
		matches = append(matches, copied)
	}
	return matches, nil
}

func (r *fakePropertyRepo) ToggleLike(_ *gorm.DB, propertyID, userID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	likers := r.store.likes[propertyID]
	if likers == nil {
		likers = make(map[string]bool)
		r.store.likes[propertyID] = likers
	}
	if likers[userID] {
		delete(likers, userID)
		return false, nil
	}
	likers[userID] = true
	return true, nil
}

// sentEmail records one delivery made through the fake provider.
type sentEmail struct {
	To       string
	Subject  string
	Template string
	Data     email.TemplateData
}

type fakeEmailProvider struct {
	mu   sync.Mutex
	sent []sentEmail
	fail bool
}

var _ email.Provider = (*fakeEmailProvider)(nil)

func (p *fakeEmailProvider) record(to, subject, template string, data email.TemplateData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return fmt.Errorf("smtp: delivery failed")
	}
	p.sent = append(p.sent, sentEmail{To: to, Subject: subject, Template: template, Data: data})
	return nil
}

func (p *fakeEmailProvider) Send(e *email.Email) error {
	to := ""
	if len(e.To) > 0 {
		to = e.To[0]
	}
	return p.record(to, e.Subject, "", nil)
}

func (p *fakeEmailProvider) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	recipient := ""
	if len(to) > 0 {
		recipient = to[0]
	}
	return p.record(recipient, subject, templateName, data)
}

func (p *fakeEmailProvider) SendPasswordReset(to, firstName, newPassword string) error {
	return p.record(to, email.SubjectPasswordReset, email.TemplatePasswordReset, email.TemplateData{
		"FirstName":   firstName,
		"NewPassword": newPassword,
	})
}

func (p *fakeEmailProvider) SendOwnerInfo(buyer email.ContactInfo, owner email.ContactInfo, propertyTitle string) error {
	return p.record(buyer.Email, email.SubjectOwnerInfo, email.TemplateOwnerInfo, email.TemplateData{
		"PropertyTitle": propertyTitle,
		"OwnerEmail":    owner.Email,
	})
}

func (p *fakeEmailProvider) SendBuyerInterest(owner email.ContactInfo, buyer email.ContactInfo, propertyTitle string) error {
	return p.record(owner.Email, email.SubjectBuyerInterest, email.TemplateBuyerInterest, email.TemplateData{
		"PropertyTitle": propertyTitle,
		"BuyerEmail":    buyer.Email,
	})
}
