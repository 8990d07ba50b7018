// Package main provides the resume_pdf CLI: render, validate, preview and
// serve structured resumes as PDF documents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-pdf/internal/config"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "resume_pdf",
	Short:        "Resume to PDF layout engine",
	Long:         "resume_pdf lays out structured resume data (JSON) into paginated PDF documents using one of ten visual templates.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: ./resume-pdf.yaml or $HOME/.resume-pdf/resume-pdf.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config file, environment and defaults, then
// applies the global --verbose flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// optionFlags binds the per-render option flags shared by render, preview
// and gallery. Unset flags fall back to the configured render defaults.
type optionFlags struct {
	template    string
	colorScheme string
	font        string
	fontSize    float64
	lineHeight  float64
	margin      float64
}

func (f *optionFlags) register(cmd *cobra.Command, withTemplate bool) {
	if withTemplate {
		cmd.Flags().StringVarP(&f.template, "template", "t", "", "Template name (see 'resume_pdf templates')")
	}
	cmd.Flags().StringVar(&f.colorScheme, "color-scheme", "", "Color scheme: blue, green, purple, red, orange, gray")
	cmd.Flags().StringVar(&f.font, "font", "", "Font family: helvetica, times, courier")
	cmd.Flags().Float64Var(&f.fontSize, "font-size", 0, "Base font size in points")
	cmd.Flags().Float64Var(&f.lineHeight, "line-height", 0, "Line height in millimeters")
	cmd.Flags().Float64Var(&f.margin, "margin", 0, "Page margin in millimeters")
}

func (f *optionFlags) options(cfg *config.Config) types.Options {
	return config.MergeOptions(cfg.Render.Options(), types.Options{
		Template:    f.template,
		ColorScheme: f.colorScheme,
		Font:        f.font,
		FontSize:    f.fontSize,
		LineHeight:  f.lineHeight,
		Margin:      f.margin,
	})
}
