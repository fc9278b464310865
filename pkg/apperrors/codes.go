package apperrors

type ErrorCode string

const (
	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business logic
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeAlreadyExists     ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeConflict          ErrorCode = "CONFLICT"
	CodeInvalidStatus     ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation  ErrorCode = "INVALID_OPERATION"
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"

	// Authentication / authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)
