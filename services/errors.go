package services

import (
	"errors"
	"fmt"
)

// ErrorType represents the type/category of error. Callers branch on
// these kinds, never on message text.
type ErrorType string

const (
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeInternal     ErrorType = "internal"
)

// DomainError represents a structured error with additional context
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Details map[string]interface{}
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is: two domain errors match on kind and message
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithDetail adds a detail to the error
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(errType ErrorType, message string, err error) *DomainError {
	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// Domain error variables

var (
	// Authentication / session
	ErrCredentialInvalid = NewDomainError(ErrorTypeUnauthorized, "invalid username or password", nil)
	ErrAccountInactive   = NewDomainError(ErrorTypeUnauthorized, "account is not active", nil)
	ErrSessionInvalid    = NewDomainError(ErrorTypeUnauthorized, "invalid or expired session", nil)
	ErrRefreshExpired    = NewDomainError(ErrorTypeUnauthorized, "refresh token expired", nil)
	ErrUnauthenticated   = NewDomainError(ErrorTypeUnauthorized, "authentication required", nil)

	// Account management
	ErrUsernameTaken    = NewDomainError(ErrorTypeConflict, "username already exists", nil)
	ErrEmailTaken       = NewDomainError(ErrorTypeConflict, "email already exists", nil)
	ErrPasswordMismatch = NewDomainError(ErrorTypeValidation, "current password is incorrect", nil)

	// Not found
	ErrUserNotFound      = NewDomainError(ErrorTypeNotFound, "user not found", nil)
	ErrRoleNotFound      = NewDomainError(ErrorTypeNotFound, "role not found", nil)
	ErrSupplierNotFound  = NewDomainError(ErrorTypeNotFound, "supplier not found", nil)
	ErrWarehouseNotFound = NewDomainError(ErrorTypeNotFound, "warehouse not found", nil)
	ErrOrderNotFound     = NewDomainError(ErrorTypeNotFound, "purchase order not found", nil)
	ErrGRNNotFound       = NewDomainError(ErrorTypeNotFound, "goods received note not found", nil)

	// Validation
	ErrInvalidInput       = NewDomainError(ErrorTypeValidation, "invalid input", nil)
	ErrOrderNotReceivable = NewDomainError(ErrorTypeValidation, "order is not awaiting receipt", nil)

	// Permission
	ErrForbidden = NewDomainError(ErrorTypeForbidden, "insufficient permissions", nil)

	// Internal
	ErrInternal = NewDomainError(ErrorTypeInternal, "internal server error", nil)
)

// Error type checking helper functions

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	return GetErrorType(err) == ErrorTypeNotFound
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return GetErrorType(err) == ErrorTypeValidation
}

// IsUnauthorizedError checks if an error is an unauthorized error
func IsUnauthorizedError(err error) bool {
	return GetErrorType(err) == ErrorTypeUnauthorized
}

// IsForbiddenError checks if an error is a forbidden error
func IsForbiddenError(err error) bool {
	return GetErrorType(err) == ErrorTypeForbidden
}

// IsConflictError checks if an error is a conflict error
func IsConflictError(err error) bool {
	return GetErrorType(err) == ErrorTypeConflict
}

// IsInternalError checks if an error is an internal error
func IsInternalError(err error) bool {
	return GetErrorType(err) == ErrorTypeInternal
}

// GetErrorType returns the ErrorType of a domain error, or empty string if not a domain error
func GetErrorType(err error) ErrorType {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Type
	}
	return ""
}

// GetErrorDetails returns the details map of a domain error, or nil if not a domain error
func GetErrorDetails(err error) map[string]interface{} {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Details
	}
	return nil
}

// WrapInternal wraps an error as an internal error
func WrapInternal(message string, err error) error {
	return NewDomainError(ErrorTypeInternal, message, err)
}
