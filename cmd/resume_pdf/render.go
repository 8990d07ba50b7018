package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-pdf/internal/ingestion"
	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/validation"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume JSON file to PDF",
	Long:  "Validates a resume JSON file, renders it with the chosen template and saves <Full_Name>_Resume.pdf into the output directory.",
	RunE:  runRender,
}

var (
	renderInput         string
	renderOutputDir     string
	renderForce         bool
	renderMaxPages      int
	renderViolationsOut string
	renderFlags         optionFlags
)

func init() {
	renderCmd.Flags().StringVarP(&renderInput, "in", "i", "", "Path to resume JSON file (required)")
	renderCmd.Flags().StringVarP(&renderOutputDir, "out-dir", "o", "", "Output directory (default: render.output_dir)")
	renderCmd.Flags().BoolVar(&renderForce, "force", false, "Render even when the resume is incomplete")
	renderCmd.Flags().IntVar(&renderMaxPages, "max-pages", -1, "Warn when the PDF exceeds this many pages (default: render.max_pages, 0 disables)")
	renderCmd.Flags().StringVar(&renderViolationsOut, "violations-out", "", "Write document check results as JSON to this path")
	renderFlags.register(renderCmd, true)

	if err := renderCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := ingestion.IngestFromFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintResumeSummary(data)
	}

	result := validation.ValidateResume(data)
	if !result.Valid {
		printer.PrintValidation(result)
		if !renderForce {
			return &validation.Error{Message: fmt.Sprintf("resume has %d problem(s); fix them or pass --force", len(result.Errors))}
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: rendering incomplete resume (--force)\n")
	}

	outDir := renderOutputDir
	if outDir == "" {
		outDir = cfg.Render.OutputDir
	}
	maxPages := renderMaxPages
	if maxPages < 0 {
		maxPages = cfg.Render.MaxPages
	}

	opts := renderFlags.options(cfg)
	path, err := rendering.Download(data, opts, outDir)
	if err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read rendered PDF: %w", err)
	}
	checks := validation.CheckDocument(content, maxPages)

	applied := rendering.ApplyDefaults(opts)
	printer.PrintRender(observability.RenderSummary{
		Template:    rendering.LookupTemplate(applied.Template).Name,
		ColorScheme: rendering.SchemeFor(applied.Template, applied.ColorScheme),
		Font:        rendering.ResolveFont(applied.Font),
		Pages:       checks.Pages,
		Bytes:       len(content),
		Path:        path,
	})
	printer.PrintViolations(checks)

	if renderViolationsOut != "" {
		if err := writeJSON(renderViolationsOut, checks); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON writes v as indented JSON, creating parent directories.
func writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
