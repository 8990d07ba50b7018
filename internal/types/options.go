// Package types provides type definitions for structured data used throughout the resume-pdf system.
package types

import "github.com/go-playground/validator/v10"

// Options configures a single render. Zero values mean "use the default";
// unknown template, font and color scheme names fall back silently.
type Options struct {
	Template     string  `json:"template,omitempty"`
	FontSize     float64 `json:"fontSize,omitempty" validate:"omitempty,gte=6,lte=24"`
	LineHeight   float64 `json:"lineHeight,omitempty" validate:"omitempty,gte=2,lte=20"`
	Margin       float64 `json:"margin,omitempty" validate:"omitempty,gte=5,lte=50"`
	Font         string  `json:"font,omitempty"`
	IncludePhoto bool    `json:"includePhoto,omitempty"` // reserved, no template draws a photo
	ColorScheme  string  `json:"colorScheme,omitempty"`
}

// RenderRequest is the HTTP body for PDF generation.
type RenderRequest struct {
	Resume  ResumeData `json:"resume"`
	Options Options    `json:"options"`
}

// ValidationResult is the outcome of the pre-render validation gate.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate checks numeric option ranges. Name fields are never rejected.
func (o *Options) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}
