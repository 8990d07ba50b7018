// Package rendering lays out structured resume data into paginated PDF documents.
package rendering

import "fmt"

// OptionsError represents render options that cannot be used (out-of-range sizes or margins)
type OptionsError struct {
	Message string
	Cause   error
}

func (e *OptionsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("options error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("options error: %s", e.Message)
}

func (e *OptionsError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Template string
	Message  string
	Cause    error
}

func (e *RenderError) Error() string {
	prefix := "render error"
	if e.Template != "" {
		prefix = fmt.Sprintf("render error (%s)", e.Template)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
