package apperrors

// Error codes grouped by domain.
const (
	// Authentication / authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Resources
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"
	CodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"

	// Business logic
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotVerified    ErrorCode = "USER_NOT_VERIFIED"
	CodeUserSuspended      ErrorCode = "USER_SUSPENDED"
	CodeUserBanned         ErrorCode = "USER_BANNED"
	CodeEmailAlreadySent   ErrorCode = "EMAIL_ALREADY_SENT"
	CodePromoInvalid       ErrorCode = "PROMO_INVALID"
	CodePromoAlreadyUsed   ErrorCode = "PROMO_ALREADY_USED"
	CodeGmailNotConnected  ErrorCode = "GMAIL_NOT_CONNECTED"
	CodePaymentFailed      ErrorCode = "PAYMENT_FAILED"
	CodeUnknownSettingKey  ErrorCode = "UNKNOWN_SETTING_KEY"

	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"
)
