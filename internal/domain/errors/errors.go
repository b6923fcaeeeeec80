// Package errors defines application errors carrying an HTTP status and a
// machine-readable reason code, mirrored directly by API responses.
package errors

import (
	"net/http"

	"placelog/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Predefined error types.
//
// Status codes follow the original API contract: token and ownership failures
// on archive resources are 401, malformed input is 400, and place reference
// lookups fail with 401 even though they are arguably client errors. The
// codes are load-bearing; clients switch on them.
var (
	// Sign-up / sign-in errors
	ErrKeyError = NewBaseError(
		http.StatusBadRequest,
		"KEY_ERROR",
		"required key missing from request body",
		"",
	)

	ErrInvalidEmailFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL_FORMAT",
		"email address format is invalid",
		"",
	)

	ErrInvalidPasswordFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PASSWORD_FORMAT",
		"password must be at least 8 characters with a letter, a digit and a special character",
		"",
	)

	ErrAccountExists = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_EXISTS_ACCOUNT",
		"an account with this email already exists",
		"",
	)

	ErrNicknameExists = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_EXISTS_NICKNAME",
		"this nickname is already taken",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_USER_EMAIL_OR_PASSWORD",
		"email or password is incorrect",
		"",
	)

	// Token errors
	ErrExpiredToken = NewBaseError(
		http.StatusBadRequest,
		"EXPIRED_TOKEN",
		"access token has expired",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"access token is malformed or has an invalid signature",
		"",
	)

	ErrInvalidUser = NewBaseError(
		http.StatusBadRequest,
		"INVALID_USER",
		"token is valid but the user no longer exists",
		"",
	)

	// Place errors
	ErrInvalidRoadAddressFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROAD_ADDRESS_FORMAT",
		"road address must contain a road or neighborhood segment followed by a building number",
		"",
	)

	ErrPlaceExists = NewBaseError(
		http.StatusBadRequest,
		"EXIST_PLACE",
		"an active place with the same name, type, address and region already exists",
		"",
	)

	ErrInvalidPlaceType = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PLACE_TYPE",
		"unknown place type",
		"",
	)

	ErrInvalidRegion = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_REGION",
		"unknown metro or local region",
		"",
	)

	ErrInvalidPlace = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PLACE",
		"place does not exist",
		"",
	)

	ErrDeletedPlace = NewBaseError(
		http.StatusBadRequest,
		"DELETED_PLACE",
		"place has been deleted",
		"",
	)

	ErrPlaceAlreadyDeleted = NewBaseError(
		http.StatusBadRequest,
		"PLACE_IS_ALREADY_DELETED",
		"place is already deleted",
		"",
	)

	// Check-in errors
	ErrAlreadyCheckedInToday = NewBaseError(
		http.StatusUnauthorized,
		"ALREADY_CHECKED_IN_TODAY",
		"already checked in at this place today",
		"",
	)

	ErrInvalidCheckIn = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CHECKIN",
		"check-in does not exist or was cancelled",
		"",
	)

	// Review errors
	//
	// ErrInvalidPlaceForReview shares the INVALID_PLACE code with ErrInvalidPlace
	// but surfaces as 400 on review routes, matching the original contract.
	ErrInvalidPlaceForReview = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PLACE",
		"place does not exist",
		"",
	)

	ErrInvalidReview = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REVIEW",
		"review does not exist or was deleted",
		"",
	)

	// Ownership errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"only the owner may modify this record",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
