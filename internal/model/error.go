package model

import (
	"fmt"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeProductNotFound  = "PRODUCT_NOT_FOUND"
	ErrCodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrCodeCategoryInUse    = "CATEGORY_IN_USE"
	ErrCodeCategoryRequired = "CATEGORY_NAME_REQUIRED"
	ErrCodeUnauthorised     = "UNAUTHORIZED"
	ErrCodeUpstreamRead     = "UPSTREAM_READ_FAILED"
	ErrCodeUpstreamWrite    = "UPSTREAM_WRITE_FAILED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCategoryNotFound     = NewDomainError(ErrCodeCategoryNotFound, "Category not found")
	ErrCategoryInUse        = NewDomainError(ErrCodeCategoryInUse, "Category is still referenced by products")
	ErrCategoryNameRequired = NewDomainError(ErrCodeCategoryRequired, "Category name is required")
)

// RemoteReadError wraps a failed read against the hosted store. The
// underlying service error is carried verbatim and never retried.
type RemoteReadError struct {
	Op  string
	Err error
}

func (e *RemoteReadError) Error() string {
	return fmt.Sprintf("remote read failed (%s): %v", e.Op, e.Err)
}

func (e *RemoteReadError) Unwrap() error { return e.Err }

// RemoteWriteError wraps a failed write against the hosted store.
type RemoteWriteError struct {
	Op  string
	Err error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("remote write failed (%s): %v", e.Op, e.Err)
}

func (e *RemoteWriteError) Unwrap() error { return e.Err }

// ValidationFailedError carries the messages produced by draft validation
// when a caller turned them into a hard failure. The write it guards is
// never attempted.
type ValidationFailedError struct {
	Messages []string
}

func (e *ValidationFailedError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
