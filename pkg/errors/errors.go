// Package errors provides structured error handling for TubeDigest
package errors

import (
	"fmt"
	"strings"

	"github.com/tubedigest/tubedigest/pkg/types"
)

// ErrorCode represents specific error codes
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField  ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Resource errors
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// System errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	ErrCodeTimeout  ErrorCode = "TIMEOUT"

	// Database errors
	ErrCodeDatabaseError    ErrorCode = "DATABASE_ERROR"
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"

	// Upstream pipeline errors
	ErrCodeUpstreamError       ErrorCode = "UPSTREAM_ERROR"
	ErrCodeUpstreamTimeout     ErrorCode = "UPSTREAM_TIMEOUT"
	ErrCodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"

	// Configuration errors
	ErrCodeConfigError    ErrorCode = "CONFIG_ERROR"
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"
)

// DigestError represents a structured error in TubeDigest
type DigestError struct {
	Type    types.ErrorType        `json:"type"`
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *DigestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (caused by: %v)", e.Code, e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *DigestError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *DigestError) WithDetail(key string, value interface{}) *DigestError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToTypes converts to types.DigestError
func (e *DigestError) ToTypes() *types.DigestError {
	return &types.DigestError{
		Type:    e.Type,
		Message: e.Message,
		Code:    string(e.Code),
		Details: e.Details,
	}
}

// New creates a new DigestError
func New(errType types.ErrorType, code ErrorCode, message string) *DigestError {
	return &DigestError{
		Type:    errType,
		Code:    code,
		Message: message,
	}
}

// NewWithCause creates a new DigestError with a cause
func NewWithCause(errType types.ErrorType, code ErrorCode, message string, cause error) *DigestError {
	return &DigestError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Validation error constructors
func NewValidationError(message string) *DigestError {
	return New(types.ErrorTypeValidation, ErrCodeValidation, message)
}

func NewInvalidInputError(message string) *DigestError {
	return New(types.ErrorTypeValidation, ErrCodeInvalidInput, message)
}

func NewMissingFieldError(field string) *DigestError {
	return New(types.ErrorTypeValidation, ErrCodeMissingField,
		fmt.Sprintf("missing required field: %s", field)).WithDetail("field", field)
}

// Resource error constructors
func NewNotFoundError(resource string) *DigestError {
	return New(types.ErrorTypeNotFound, ErrCodeNotFound,
		fmt.Sprintf("%s not found", resource)).WithDetail("resource", resource)
}

func NewAlreadyExistsError(resource string) *DigestError {
	return New(types.ErrorTypeValidation, ErrCodeAlreadyExists,
		fmt.Sprintf("%s already exists", resource)).WithDetail("resource", resource)
}

// System error constructors
func NewInternalError(message string) *DigestError {
	return New(types.ErrorTypeInternal, ErrCodeInternal, message)
}

func NewInternalErrorWithCause(message string, cause error) *DigestError {
	return NewWithCause(types.ErrorTypeInternal, ErrCodeInternal, message, cause)
}

func NewTimeoutError(operation string) *DigestError {
	return New(types.ErrorTypeInternal, ErrCodeTimeout,
		fmt.Sprintf("%s operation timed out", operation)).WithDetail("operation", operation)
}

// Database error constructors
func NewDatabaseError(message string, cause error) *DigestError {
	return NewWithCause(types.ErrorTypeInternal, ErrCodeDatabaseError, message, cause)
}

func NewConnectionFailedError(target string) *DigestError {
	return New(types.ErrorTypeInternal, ErrCodeConnectionFailed,
		fmt.Sprintf("failed to connect to %s", target)).WithDetail("target", target)
}

// Upstream pipeline error constructors
func NewUpstreamError(message string, cause error) *DigestError {
	return NewWithCause(types.ErrorTypeExternal, ErrCodeUpstreamError, message, cause)
}

func NewUpstreamTimeoutError(flowID string) *DigestError {
	return New(types.ErrorTypeExternal, ErrCodeUpstreamTimeout,
		fmt.Sprintf("upstream flow timed out: %s", flowID)).WithDetail("flow_id", flowID)
}

func NewUpstreamUnavailableError() *DigestError {
	return New(types.ErrorTypeExternal, ErrCodeUpstreamUnavailable, "upstream pipeline is unavailable")
}

// Configuration error constructors
func NewConfigError(message string) *DigestError {
	return New(types.ErrorTypeValidation, ErrCodeConfigError, message)
}

func NewConfigNotFoundError(configPath string) *DigestError {
	return New(types.ErrorTypeNotFound, ErrCodeConfigNotFound,
		fmt.Sprintf("configuration file not found: %s", configPath)).WithDetail("config_path", configPath)
}

func NewConfigInvalidError(message string) *DigestError {
	return New(types.ErrorTypeValidation, ErrCodeConfigInvalid, message)
}

// IsDigestError checks if an error is a DigestError
func IsDigestError(err error) bool {
	_, ok := err.(*DigestError)
	return ok
}

// GetDigestError extracts a DigestError from an error
func GetDigestError(err error) *DigestError {
	if digestErr, ok := err.(*DigestError); ok {
		return digestErr
	}
	return nil
}

// WrapError wraps an error as a DigestError
func WrapError(err error, errType types.ErrorType, code ErrorCode, message string) *DigestError {
	return NewWithCause(errType, code, message, err)
}

// ErrorList represents a list of errors
type ErrorList struct {
	Errors []*DigestError `json:"errors"`
}

// Error implements the error interface
func (el *ErrorList) Error() string {
	var messages []string
	for _, err := range el.Errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Add adds an error to the list
func (el *ErrorList) Add(err *DigestError) {
	el.Errors = append(el.Errors, err)
}

// HasErrors returns true if there are errors
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// ToError returns the ErrorList as an error if it has errors, otherwise nil
func (el *ErrorList) ToError() error {
	if el.HasErrors() {
		return el
	}
	return nil
}

// NewErrorList creates a new error list
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*DigestError, 0),
	}
}
