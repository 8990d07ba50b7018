package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-pdf/internal/observability"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available templates and color schemes",
	RunE:  runTemplates,
}

var templatesJSON bool

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(_ *cobra.Command, _ []string) error {
	if !templatesJSON {
		observability.NewPrinter(os.Stdout).PrintCatalog(rendering.Templates(), rendering.ColorSchemes())
		return nil
	}

	out, err := json.MarshalIndent(map[string][]string{
		"templates":    rendering.Templates(),
		"colorSchemes": rendering.ColorSchemes(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(out))
	return nil
}
