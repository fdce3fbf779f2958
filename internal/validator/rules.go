package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"rentify_backend/internal/auth"
	"rentify_backend/internal/models"
)

// Country code, optional space, 6-14 digits: +918696958620
var phonePattern = regexp.MustCompile(`^\+\d{1,3}\s?\d{6,14}$`)

// registerCustomRules registers all custom validation tags on the given
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error, not a
			// per-request one.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("usertype", validateUserType)
	mustRegister("phone_intl", validatePhone)
	mustRegister("password_complexity", validatePasswordComplexity)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are 'required's problem
	}
	switch models.UserType(value) {
	case models.UserTypeBuyer, models.UserTypeSeller:
		return true
	default:
		return false
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phonePattern.MatchString(value)
}

func validatePasswordComplexity(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return auth.ValidatePassword(value) == nil
}
