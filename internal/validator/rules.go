package validator

import (
	"log"

	"outreachai_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs validation tags backed by the enums in
// models/statuses.go. Empty values pass; 'required' handles those.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-user-status", validateUserStatus)
	mustRegister("is-document-type", validateDocumentType)
	mustRegister("is-promo-type", validatePromoType)
	mustRegister("is-ticket-status", validateTicketStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateUserStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserStatus(value) {
	case models.UserStatusActive, models.UserStatusSuspended, models.UserStatusBanned:
		return true
	default:
		return false
	}
}

func validateDocumentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.DocumentType(value) {
	case models.DocumentTypeCV, models.DocumentTypeTranscript, models.DocumentTypeCoverLetter, models.DocumentTypeOther:
		return true
	default:
		return false
	}
}

func validatePromoType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.PromoType(value) {
	case models.PromoTypePercent, models.PromoTypeFixed, models.PromoTypeFreeDays:
		return true
	default:
		return false
	}
}

func validateTicketStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.TicketStatus(value) {
	case models.TicketStatusOpen, models.TicketStatusInProgress, models.TicketStatusClosed:
		return true
	default:
		return false
	}
}
