package domain

import (
	"fmt"
	"net/http"
)

// Detail messages returned to the caller.
const (
	DetailAPIKeyNotFound   = "API Key not found"
	DetailNoImageData      = "No image data in response"
	UpstreamDetailPrefix   = "Stability AI API Error: "
	defaultUpstreamFailure = http.StatusInternalServerError
)

// ConfigurationError means the image provider credential is not configured.
type ConfigurationError struct {
	Key string
}

func (e *ConfigurationError) Error() string {
	return DetailAPIKeyNotFound
}

// TranslationError wraps any failure of the translator. It never reaches the caller.
type TranslationError struct {
	Provider string
	Err      error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation via %s failed: %v", e.Provider, e.Err)
}

func (e *TranslationError) Unwrap() error { return e.Err }

// UpstreamErrorKind distinguishes a rejected request from a malformed success.
type UpstreamErrorKind int

const (
	// UpstreamStatus is a non-200 response from the image provider.
	UpstreamStatus UpstreamErrorKind = iota
	// UpstreamMissingData is a 200 response without an image payload.
	UpstreamMissingData
)

// UpstreamError is a failure reported by the image provider.
type UpstreamError struct {
	Kind       UpstreamErrorKind
	StatusCode int
	// Detail is the provider's own error text, already rendered to a single string.
	Detail string
}

// NewUpstreamStatusError builds the non-200 variant.
func NewUpstreamStatusError(statusCode int, detail string) *UpstreamError {
	return &UpstreamError{Kind: UpstreamStatus, StatusCode: statusCode, Detail: detail}
}

// NewMissingImageError builds the missing-payload variant.
func NewMissingImageError() *UpstreamError {
	return &UpstreamError{Kind: UpstreamMissingData, StatusCode: defaultUpstreamFailure}
}

func (e *UpstreamError) Error() string {
	if e.Kind == UpstreamMissingData {
		return DetailNoImageData
	}
	return UpstreamDetailPrefix + e.Detail
}

// HTTPStatus is the status the caller receives for this error.
func (e *UpstreamError) HTTPStatus() int {
	if e.Kind == UpstreamMissingData || e.StatusCode == 0 {
		return defaultUpstreamFailure
	}
	return e.StatusCode
}

// UnexpectedError is any other fault; its message is passed to the caller as is.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
