package errors

import (
	"net/http"

	"dispatch/internal/errors"
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"actor is missing or not permitted to perform this operation",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"one or more required fields are missing or invalid",
		"",
	)

	ErrImageRequired = NewBaseError(
		http.StatusBadRequest,
		"IMAGE_REQUIRED",
		"a package image must be attached",
		"",
	)

	// Lookup errors
	ErrDeliveryNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_NOT_FOUND",
		"no delivery matches the given identifier or code",
		"",
	)

	ErrRiderNotFound = NewBaseError(
		http.StatusNotFound,
		"RIDER_NOT_FOUND",
		"no rider matches the given identifier",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"no user matches the given identifier",
		"",
	)

	// Dispatch errors
	ErrNoRiderAvailable = NewBaseError(
		http.StatusNotFound,
		"NO_RIDER_AVAILABLE",
		"no eligible rider is available for this delivery",
		"",
	)

	ErrMissingPickupCoordinate = NewBaseError(
		http.StatusUnprocessableEntity,
		"MISSING_PICKUP_COORDINATE",
		"the delivery has no pickup coordinate to match against",
		"",
	)

	// Lifecycle integrity errors
	ErrAlreadyAssigned = NewBaseError(
		http.StatusConflict,
		"ALREADY_ASSIGNED",
		"the delivery already has an assigned rider",
		"",
	)

	ErrNotAssigned = NewBaseError(
		http.StatusForbidden,
		"NOT_ASSIGNED",
		"the delivery is not assigned to the acting rider",
		"",
	)

	ErrAlreadyDelivered = NewBaseError(
		http.StatusConflict,
		"ALREADY_DELIVERED",
		"the delivery has already been confirmed",
		"",
	)

	ErrOwnershipMismatch = NewBaseError(
		http.StatusForbidden,
		"OWNERSHIP_MISMATCH",
		"the delivery does not belong to the acting user",
		"",
	)

	ErrRiderMismatch = NewBaseError(
		http.StatusForbidden,
		"RIDER_MISMATCH",
		"the assigned rider does not match the expected rider",
		"",
	)

	ErrDeliveryNotDeletable = NewBaseError(
		http.StatusConflict,
		"DELIVERY_NOT_DELETABLE",
		"a delivery cannot be deleted once picked up or delivered",
		"",
	)

	// General errors
	ErrRequestFailed = NewBaseError(
		http.StatusInternalServerError,
		"REQUEST_FAILED",
		"the requested update did not apply",
		"",
	)

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
