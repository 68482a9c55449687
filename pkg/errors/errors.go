package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a single invalid field, either in configuration data
// or in user input such as the contact form.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FieldErrors groups validation failures keyed by field so forms can show
// feedback next to each input.
type FieldErrors []*ValidationError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// For returns the message recorded for field, or "" if the field is valid.
func (fe FieldErrors) For(field string) string {
	for _, e := range fe {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

// InvalidPageError reports a navigation target outside the declared page set.
type InvalidPageError struct {
	Page       string
	Suggestion string
}

// NewInvalidPageError constructs an InvalidPageError.
func NewInvalidPageError(page, suggestion string) error {
	return &InvalidPageError{Page: page, Suggestion: suggestion}
}

func (e *InvalidPageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Suggestion != "" {
		return fmt.Sprintf("invalid page %q (did you mean %q?)", e.Page, e.Suggestion)
	}
	return fmt.Sprintf("invalid page %q", e.Page)
}

// StorageError wraps a failed read or write against persisted storage.
type StorageError struct {
	Op  string
	Key string
	Err error
}

// NewStorageError constructs a StorageError for the given operation.
func NewStorageError(op, key string, err error) error {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying error.
func (e *StorageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SubmissionError indicates the submission service rejected or failed to
// deliver an enquiry.
type SubmissionError struct {
	ID  string
	Err error
}

// NewSubmissionError constructs a SubmissionError for the enquiry id.
func NewSubmissionError(id string, err error) error {
	return &SubmissionError{ID: id, Err: err}
}

func (e *SubmissionError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("submission %s failed: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("submission failed: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *SubmissionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
