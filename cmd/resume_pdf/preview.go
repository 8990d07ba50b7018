package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-pdf/internal/ingestion"
	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/preview"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/validation"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a resume and open it in a browser",
	Long: `Renders the resume to a temporary PDF and opens it in a Chrome window. The
command returns when the window is closed, the preview timeout elapses or
it is interrupted; the temporary file is removed afterwards.`,
	RunE: runPreview,
}

var (
	previewInput   string
	previewBrowser string
	previewFlags   optionFlags
)

func init() {
	previewCmd.Flags().StringVarP(&previewInput, "in", "i", "", "Path to resume JSON file (required)")
	previewCmd.Flags().StringVar(&previewBrowser, "browser", "", "Path to the Chrome/Chromium executable (default: preview.browser_path or auto-detect)")
	previewFlags.register(previewCmd, true)

	if err := previewCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := ingestion.IngestFromFile(previewInput)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	if result := validation.ValidateResume(data); !result.Valid {
		observability.NewPrinter(os.Stdout).PrintValidation(result)
		_, _ = fmt.Fprintf(os.Stderr, "Warning: previewing incomplete resume\n")
	}

	browserPath := previewBrowser
	if browserPath == "" {
		browserPath = cfg.Preview.BrowserPath
	}
	opener := preview.NewBrowserOpener(browserPath, cfg.Preview.Timeout, cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rendering.Preview(ctx, data, previewFlags.options(cfg), opener)
}
