package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrVendorNotFound is returned when a vendor does not exist.
	ErrVendorNotFound = errors.New("vendor not found")
	// ErrItemNotFound is returned when a catalog item does not exist.
	ErrItemNotFound = errors.New("catalog item not found")
	// ErrImageType is returned when an image is not JPEG, PNG, or WebP.
	ErrImageType = errors.New("image must be a JPEG, PNG, or WebP file")
	// ErrImageTooLarge is returned when an image exceeds the size ceiling.
	ErrImageTooLarge = errors.New("image size must be 5MB or less")
)

// ValidationError is a client-detected input error. It is raised before any
// network call and is never logged as unexpected.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a formatted validation error.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UploadError wraps a failure while transferring an object to storage.
// It aborts the enclosing operation; nothing is persisted after it.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return "image upload failed: " + e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return NewHTTPError(http.StatusBadRequest, validationErr.Msg, "VALIDATION_FAILED")
	}
	var uploadErr *UploadError
	if errors.As(err, &uploadErr) {
		return NewHTTPError(http.StatusBadGateway, uploadErr.Error(), "UPLOAD_FAILED")
	}

	switch {
	case errors.Is(err, ErrVendorNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "VENDOR_NOT_FOUND")
	case errors.Is(err, ErrItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case errors.Is(err, ErrImageType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_IMAGE_TYPE")
	case errors.Is(err, ErrImageTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "IMAGE_TOO_LARGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), "PERSIST_FAILED")
	}
}
