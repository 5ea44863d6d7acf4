package versioncheck

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the stream ends before any line.
	ErrEmptyInput = errors.New("empty input")
	// ErrMalformedVersionField is returned when the line has no second colon-delimited field.
	ErrMalformedVersionField = errors.New("malformed version field")
	// ErrMalformedMajorVersion is returned when the major component is not an integer.
	ErrMalformedMajorVersion = errors.New("malformed major version")
	// ErrVersionTooLow is returned when the major component is below the minimum.
	ErrVersionTooLow = errors.New("version too low")
)

// CheckError describes a failed check. Kind is one of the Err* sentinels and
// is what errors.Is matches against.
type CheckError struct {
	Kind     error
	Line     string
	Field    string
	Major    int
	MinMajor int
	Err      error
}

func (e *CheckError) Error() string {
	switch e.Kind {
	case ErrEmptyInput:
		return "empty input: no version line on stdin"
	case ErrMalformedVersionField:
		return fmt.Sprintf("malformed version field: %q has no ':'-delimited version", e.Line)
	case ErrMalformedMajorVersion:
		return fmt.Sprintf("malformed major version: %q is not an integer", e.Field)
	case ErrVersionTooLow:
		return fmt.Sprintf("version too low: major version %d is below the required %d", e.Major, e.MinMajor)
	default:
		return fmt.Sprintf("version check failed: %v", e.Kind)
	}
}

// Unwrap exposes both the kind and the underlying parse error, if any.
func (e *CheckError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// KindName returns the taxonomy name of err, or "" when err is not a check failure.
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return "EmptyInput"
	case errors.Is(err, ErrMalformedVersionField):
		return "MalformedVersionField"
	case errors.Is(err, ErrMalformedMajorVersion):
		return "MalformedMajorVersion"
	case errors.Is(err, ErrVersionTooLow):
		return "VersionTooLow"
	default:
		return ""
	}
}
