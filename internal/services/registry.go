package services

import "rentify_backend/internal/email"

// ServiceContainer bundles the constructed services for wiring.
type ServiceContainer struct {
	UserService     UserService
	PropertyService PropertyService
	EmailProvider   email.Provider
}
