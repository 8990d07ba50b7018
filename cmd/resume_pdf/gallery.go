package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jonathan/resume-pdf/internal/ingestion"
	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Render a resume with every template",
	Long:  "Renders the resume once per template, in parallel, and saves <Full_Name>_<template>.pdf files into the output directory.",
	RunE:  runGallery,
}

var (
	galleryInput     string
	galleryOutputDir string
	galleryFlags     optionFlags
)

func init() {
	galleryCmd.Flags().StringVarP(&galleryInput, "in", "i", "", "Path to resume JSON file (required)")
	galleryCmd.Flags().StringVarP(&galleryOutputDir, "out-dir", "o", "gallery", "Output directory")
	galleryFlags.register(galleryCmd, false)

	if err := galleryCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(galleryCmd)
}

func runGallery(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := ingestion.IngestFromFile(galleryInput)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}
	if err := os.MkdirAll(galleryOutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	results := renderGallery(context.Background(), data, galleryFlags.options(cfg), galleryOutputDir)
	observability.NewPrinter(os.Stdout).PrintGallery(results)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d templates failed to render", failed, len(results))
	}
	return nil
}

// renderGallery renders data with every template concurrently. Each render
// owns its canvas; a failed template is reported in its summary and does
// not stop the others.
func renderGallery(ctx context.Context, data *types.ResumeData, base types.Options, dir string) []observability.RenderSummary {
	names := rendering.Templates()
	results := make([]observability.RenderSummary, len(names))
	prefix := strings.TrimSuffix(rendering.FileName(data), "_Resume.pdf")
	prefix = strings.TrimSuffix(prefix, ".pdf")

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, name := range names {
		g.Go(func() error {
			opts := base
			opts.Template = name
			results[i] = renderOne(data, opts, filepath.Join(dir, prefix+"_"+name+".pdf"))
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func renderOne(data *types.ResumeData, opts types.Options, path string) observability.RenderSummary {
	summary := observability.RenderSummary{Template: opts.Template}

	doc, err := rendering.Generate(data, opts)
	if err != nil {
		summary.Err = err
		return summary
	}
	if err := os.WriteFile(path, doc.Bytes(), 0644); err != nil {
		summary.Err = fmt.Errorf("failed to write PDF: %w", err)
		return summary
	}

	summary.ColorScheme = doc.ColorScheme
	summary.Font = doc.Font
	summary.Pages = doc.Pages
	summary.Bytes = len(doc.Bytes())
	summary.Path = path
	return summary
}
