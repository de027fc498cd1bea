package models

import "errors"

// Application-wide standard errors
var (
	// Common Resource/DB Errors
	ErrNotFound        = errors.New("resource not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrSlideNotFound   = errors.New("slide not found")
	ErrCommentNotFound = errors.New("comment not found")

	// User & Authentication Errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Token Errors
	ErrTokenInvalid  = errors.New("token is invalid")
	ErrTokenExpired  = errors.New("token has expired")
	ErrTokenRevoked  = errors.New("token has been revoked")
	ErrTokenNotFound = errors.New("token not found in storage")

	// Project & Generation Errors
	ErrProjectNotConfigured  = errors.New("project has no configured structure")
	ErrInvalidProjectType    = errors.New("invalid project type")
	ErrGenerationFailed      = errors.New("content generation failed")
	ErrGenerationUnavailable = errors.New("generation service is unavailable")
	ErrGenerationRateLimited = errors.New("generation service rate limit exceeded")
	ErrNothingToRefine       = errors.New("no generated content to refine")
	ErrNothingToExport       = errors.New("no generated content to export")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidInput   = errors.New("invalid input data")
)
