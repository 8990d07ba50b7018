// Package observability provides formatted output utilities for CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-pdf/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// RenderSummary describes one produced document.
type RenderSummary struct {
	Template    string
	ColorScheme string
	Font        string
	Pages       int
	Bytes       int
	Path        string
	Err         error
}

// Printer handles formatted CLI output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintResumeSummary outputs a short overview of the loaded resume.
func (p *Printer) PrintResumeSummary(data *types.ResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", data.PersonalInfo.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", data.PersonalInfo.Email))
	sb.WriteString("\n")

	if len(data.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(data.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := data.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s\n", exp.Position, exp.Company))
		}
		if len(data.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Education: %d  Skills: %d  Projects: %d\n",
		len(data.Education), len(data.Skills), len(data.Projects)))
	sb.WriteString(fmt.Sprintf("Certifications: %d  Languages: %d",
		len(data.Certifications), len(data.Languages)))

	p.printBox("RESUME", sb.String())
}

// PrintValidation outputs the validation gate result.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(result types.ValidationResult) {
	if result.Valid {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ RESUME IS VALID")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(result.Errors)))
	for _, msg := range result.Errors {
		sb.WriteString(fmt.Sprintf("✗ %s\n", msg))
	}
	p.printBox("VALIDATION FAILED", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRender outputs the summary of one rendered document.
func (p *Printer) PrintRender(s RenderSummary) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", s.Template))
	sb.WriteString(fmt.Sprintf("Colors:   %s\n", s.ColorScheme))
	sb.WriteString(fmt.Sprintf("Font:     %s\n", s.Font))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", s.Pages))
	sb.WriteString(fmt.Sprintf("Size:     %s", formatBytes(s.Bytes)))
	if s.Path != "" {
		sb.WriteString(fmt.Sprintf("\nSaved:    %s", s.Path))
	}
	p.printBox("PDF RENDERED", sb.String())
}

// PrintGallery outputs one line per template render.
func (p *Printer) PrintGallery(results []RenderSummary) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			sb.WriteString(fmt.Sprintf("✗ %-11s %v\n", r.Template, r.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %-11s %d page(s)  %s\n", r.Template, r.Pages, formatBytes(r.Bytes)))
	}
	sb.WriteString(fmt.Sprintf("\n%d rendered, %d failed", len(results)-failed, failed))

	p.printBox("TEMPLATE GALLERY", sb.String())
}

// PrintCatalog outputs the supported templates and color schemes.
func (p *Printer) PrintCatalog(templates, schemes []string) {
	var sb strings.Builder
	sb.WriteString("Templates:\n")
	for _, name := range templates {
		sb.WriteString(fmt.Sprintf("  • %s\n", name))
	}
	sb.WriteString("\nColor schemes:\n")
	sb.WriteString("  " + strings.Join(schemes, ", "))
	p.printBox("CATALOG", sb.String())
}

// PrintViolations outputs any problems found in the rendered document.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT CHECKS PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(violations.Violations)))
	for i, v := range violations.Violations {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", v.Type, v.Severity))
		sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("DOCUMENT CHECKS", strings.TrimSuffix(sb.String(), "\n"))
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
