package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeFetch represents outbound request failures (network errors or non-2xx responses)
	ErrorTypeFetch ErrorType = "fetch"
	// ErrorTypeNotFound represents a page without the embedded JSON block
	ErrorTypeNotFound ErrorType = "not_found"
	// ErrorTypeParse represents malformed JSON or malformed date strings
	ErrorTypeParse ErrorType = "parse"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ScrapeError represents a scraper-specific error
type ScrapeError struct {
	Type    ErrorType
	Stage   string
	Message string
	Err     error
	Time    time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Stage, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Stage, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsExtraction reports whether the error belongs to the extraction stage,
// which covers both the missing-block and malformed-payload cases.
func (e *ScrapeError) IsExtraction() bool {
	return e.Type == ErrorTypeNotFound || e.Type == ErrorTypeParse
}

// New creates a new ScrapeError
func New(errType ErrorType, stage, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		Stage:   stage,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewFetch creates a new fetch error
func NewFetch(stage, message string, err error) *ScrapeError {
	return New(ErrorTypeFetch, stage, message, err)
}

// NewNotFound creates a new not-found error
func NewNotFound(stage, message string) *ScrapeError {
	return New(ErrorTypeNotFound, stage, message, nil)
}

// NewParse creates a new parse error
func NewParse(stage, message string, err error) *ScrapeError {
	return New(ErrorTypeParse, stage, message, err)
}

// NewValidation creates a new validation error
func NewValidation(stage, message string) *ScrapeError {
	return New(ErrorTypeValidation, stage, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ScrapeError {
	return New(ErrorTypeConfiguration, "", message, err)
}

// IsType reports whether err is a ScrapeError of the given type
func IsType(err error, errType ErrorType) bool {
	var scrapeErr *ScrapeError
	if stderrors.As(err, &scrapeErr) {
		return scrapeErr.Type == errType
	}
	return false
}

// IsFetch reports whether err is a fetch error
func IsFetch(err error) bool {
	return IsType(err, ErrorTypeFetch)
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return IsType(err, ErrorTypeNotFound)
}

// IsParse reports whether err is a parse error
func IsParse(err error) bool {
	return IsType(err, ErrorTypeParse)
}
