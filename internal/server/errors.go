package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrRequestTooLarge indicates the body exceeded server.max_body_bytes
type ErrRequestTooLarge struct {
	Limit int64
}

func (e *ErrRequestTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// ErrIncompleteResume indicates the resume failed the pre-render gate
type ErrIncompleteResume struct {
	Errors []string
}

func (e *ErrIncompleteResume) Error() string {
	return fmt.Sprintf("resume is incomplete: %d problem(s)", len(e.Errors))
}

// HTTPStatus returns the appropriate HTTP status code for an error. Render
// failures and schema load failures are server faults.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		tooLarge      *ErrRequestTooLarge
		incomplete    *ErrIncompleteResume
		schemaErr     *schemas.ValidationError
		optionsErr    *rendering.OptionsError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaErr), errors.As(err, &optionsErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &incomplete):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// errorDetails lists the individual problems behind err, if it carries any.
func errorDetails(err error) []string {
	var (
		schemaErr  *schemas.ValidationError
		incomplete *ErrIncompleteResume
		optionsErr *rendering.OptionsError
	)

	switch {
	case errors.As(err, &schemaErr):
		return schemaErr.Messages()
	case errors.As(err, &incomplete):
		return incomplete.Errors
	case errors.As(err, &optionsErr) && optionsErr.Cause != nil:
		return []string{optionsErr.Cause.Error()}
	default:
		return nil
	}
}
