// Package validation checks resume data before rendering and inspects the
// PDF documents produced by rendering.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PDFReadError represents a document that could not be parsed as a PDF
type PDFReadError struct {
	Message string
	Cause   error
}

func (e *PDFReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf read error: %s", e.Message)
}

func (e *PDFReadError) Unwrap() error {
	return e.Cause
}

// FileReadError represents an error reading a file
type FileReadError struct {
	Message string
	Cause   error
}

func (e *FileReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("file read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("file read error: %s", e.Message)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}
