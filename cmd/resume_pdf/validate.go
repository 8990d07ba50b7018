package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-pdf/internal/ingestion"
	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume JSON file or check a rendered PDF",
	Long: `Validates a resume JSON file against the resume schema and the pre-render
completeness rules. With --pdf, checks an already rendered document instead:
that it can be read, how many pages it has and whether it carries text.`,
	RunE: runValidate,
}

var (
	validateInput    string
	validateSchema   string
	validatePDF      string
	validateMaxPages int
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to resume JSON file")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Validate against this JSON schema file instead of the built-in one")
	validateCmd.Flags().StringVar(&validatePDF, "pdf", "", "Path to a rendered PDF to check")
	validateCmd.Flags().IntVar(&validateMaxPages, "max-pages", -1, "Page budget for --pdf (default: render.max_pages, 0 disables)")

	validateCmd.MarkFlagsOneRequired("in", "pdf")
	validateCmd.MarkFlagsMutuallyExclusive("in", "pdf")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	printer := observability.NewPrinter(os.Stdout)
	if validatePDF != "" {
		return validateDocument(printer)
	}

	if validateSchema != "" {
		if err := schemas.ValidateJSON(validateSchema, validateInput); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				_, _ = fmt.Fprintf(os.Stdout, "Validation failed:\n%s", validationErr.Error())
				return fmt.Errorf("resume does not match %s", validateSchema)
			}
			return err
		}
	}

	data, err := ingestion.IngestFromFile(validateInput)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	result := validation.ValidateResume(data)
	printer.PrintValidation(result)
	if !result.Valid {
		return &validation.Error{Message: fmt.Sprintf("resume has %d problem(s)", len(result.Errors))}
	}
	return nil
}

func validateDocument(printer *observability.Printer) error {
	maxPages := validateMaxPages
	if maxPages < 0 {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		maxPages = cfg.Render.MaxPages
	}

	pages, err := validation.CountPDFPagesFile(validatePDF)
	if err != nil {
		return fmt.Errorf("failed to check PDF: %w", err)
	}
	content, err := os.ReadFile(validatePDF)
	if err != nil {
		return &validation.FileReadError{Message: "failed to read PDF file", Cause: err}
	}

	checks := validation.CheckDocument(content, maxPages)
	_, _ = fmt.Fprintf(os.Stdout, "Pages: %d\n", pages)
	printer.PrintViolations(checks)
	if len(checks.Violations) > 0 {
		return fmt.Errorf("document check found %d issue(s)", len(checks.Violations))
	}
	return nil
}
