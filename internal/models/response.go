package models

// Error codes returned in the "code" field of error responses.
// Clients branch on these instead of parsing messages.
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeWrongCredentials = "WRONG_CREDENTIALS"
	ErrCodeDuplicateEmail   = "DUPLICATE_EMAIL"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
	ErrCodeTokenInvalid     = "TOKEN_INVALID"
	ErrCodeTokenExpired     = "TOKEN_EXPIRED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeAIUnavailable    = "AI_UNAVAILABLE"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse carries a human-readable status message, used by
// operations that have no richer payload (logout, deletes, generation).
type MessageResponse struct {
	Message string `json:"message"`
}
