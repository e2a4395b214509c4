// Package errors provides centralized error definitions and error handling
// utilities for the segcut codebase. It defines domain-specific errors,
// semantic error types, error constructors with context wrapping, and error
// classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Domain-specific errors represent errors from specific subsystems:
//   - CutListError: errors related to cut-list files and edits
//   - RenderError: errors related to building render proposals
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewCutListError("duplicate segment id", errors.ErrDuplicateSegment).
//	    WithSegmentID("4.2")
//
//	// Semantic error
//	err := errors.NewNotFoundError("segment", "4.2")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrSegmentNotFound) { ... }
//	if errors.IsNotFound(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions so callers only need this package.
var (
	// New creates a new error with the given message.
	New = errors.New
	// Is reports whether any error in err's chain matches target.
	Is = errors.Is
	// As finds the first error in err's chain that matches target.
	As = errors.As
	// Unwrap returns the result of calling Unwrap on err.
	Unwrap = errors.Unwrap
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Cut-list sentinel errors
var (
	// ErrEmptyCutList indicates that a cut list has no segments.
	ErrEmptyCutList = New("cut list has no segments")
	// ErrSegmentNotFound indicates that a segment could not be found.
	ErrSegmentNotFound = New("segment not found")
	// ErrDuplicateSegment indicates that a segment id appears more than once.
	ErrDuplicateSegment = New("duplicate segment id")
	// ErrInvalidTimeRange indicates that a segment's time range is inverted.
	ErrInvalidTimeRange = New("invalid segment time range")
	// ErrOrphanMarkers indicates markers referencing a segment that does not exist.
	ErrOrphanMarkers = New("markers reference unknown segment")
)

// Editing sentinel errors
var (
	// ErrNoUsableCuts indicates that a split had no cut times inside the segment.
	ErrNoUsableCuts = New("no usable cut times")
	// ErrGroupTooSmall indicates a combine group with fewer than two members.
	ErrGroupTooSmall = New("combine group needs at least 2 members")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// CutListError represents an error in a cut-list file or an edit applied
// to one.
//
// Example:
//
//	err := errors.NewCutListError("segment ends before it starts", errors.ErrInvalidTimeRange).
//	    WithSegmentID("2").
//	    WithPath("cuts.yaml")
type CutListError struct {
	message   string
	cause     error
	Path      string
	SegmentID string
}

// NewCutListError creates a new CutListError.
func NewCutListError(message string, cause error) *CutListError {
	return &CutListError{message: message, cause: cause}
}

// WithPath adds the cut-list file path to the error.
func (e *CutListError) WithPath(path string) *CutListError {
	e.Path = path
	return e
}

// WithSegmentID adds a segment id to the error.
func (e *CutListError) WithSegmentID(id string) *CutListError {
	e.SegmentID = id
	return e
}

// Error returns the formatted error message.
func (e *CutListError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.SegmentID != "" {
		parts = append(parts, fmt.Sprintf("segment=%s", e.SegmentID))
	}

	prefix := "cut list error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("cut list error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying cause.
func (e *CutListError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *CutListError) Is(target error) bool {
	if _, ok := target.(*CutListError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// RenderError represents an error building a render proposal.
type RenderError struct {
	message string
	cause   error
	Format  string
}

// NewRenderError creates a new RenderError.
func NewRenderError(message string, cause error) *RenderError {
	return &RenderError{message: message, cause: cause}
}

// WithFormat adds the offending render format to the error.
func (e *RenderError) WithFormat(format string) *RenderError {
	e.Format = format
	return e
}

// Error returns the formatted error message.
func (e *RenderError) Error() string {
	prefix := "render error"
	if e.Format != "" {
		prefix = fmt.Sprintf("render error [format=%s]", e.Format)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *RenderError) Is(target error) bool {
	if _, ok := target.(*RenderError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("segment", "4.2")
//	fmt.Println(err) // "segment not found: 4.2"
type NotFoundError struct {
	ResourceType string
	ResourceID   string
	cause        error
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{ResourceType: resourceType, ResourceID: resourceID}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	base := fmt.Sprintf("%s not found: %s", e.ResourceType, e.ResourceID)
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", base, e.cause)
	}
	return base
}

// Unwrap returns the underlying cause.
func (e *NotFoundError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if e.ResourceType == "segment" && errors.Is(target, ErrSegmentNotFound) {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// ValidationError represents invalid input or state.
type ValidationError struct {
	Field   string
	message string
	cause   error
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, message: message}
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	prefix := "validation error"
	if e.Field != "" {
		prefix = fmt.Sprintf("validation error [field=%s]", e.Field)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Unwrap returns the underlying cause.
func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var notFound *NotFoundError
	return As(err, &notFound) || Is(err, ErrSegmentNotFound)
}

// IsDomainError returns true if the error is a domain-specific error
// (CutListError or RenderError).
func IsDomainError(err error) bool {
	if err == nil {
		return false
	}
	var cutListErr *CutListError
	var renderErr *RenderError
	return As(err, &cutListErr) || As(err, &renderErr)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to read cut list")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "failed to split segment %s", id)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
