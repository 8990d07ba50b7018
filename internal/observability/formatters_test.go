package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResumeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(&types.ResumeData{
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Experience:   []types.Experience{{Company: "Acme Corp", Position: "Engineer"}},
	})
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Engineer @ Acme Corp")
	assert.Contains(t, output, "Education: 0")
}

func TestPrintResumeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResumeSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintResumeSummary_TruncatesExperience(t *testing.T) {
	var buf bytes.Buffer
	data := &types.ResumeData{}
	for i := 0; i < 8; i++ {
		data.Experience = append(data.Experience, types.Experience{Company: "Acme", Position: "Engineer"})
	}

	NewPrinter(&buf).PrintResumeSummary(data)
	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintValidation(types.ValidationResult{Valid: true})
	assert.Contains(t, buf.String(), "RESUME IS VALID")

	buf.Reset()
	p.PrintValidation(types.ValidationResult{Errors: []string{"Full name is required", "Email is required"}})
	output := buf.String()
	assert.Contains(t, output, "VALIDATION FAILED")
	assert.Contains(t, output, "Found 2 problems")
	assert.Contains(t, output, "✗ Email is required")
}

func TestPrintRender(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRender(RenderSummary{
		Template: "classic", ColorScheme: "gray", Font: "helvetica", Pages: 1, Bytes: 2048, Path: "out/Jane_Doe_Resume.pdf",
	})
	output := buf.String()

	assert.Contains(t, output, "PDF RENDERED")
	assert.Contains(t, output, "classic")
	assert.Contains(t, output, "2.0 KB")
	assert.Contains(t, output, "out/Jane_Doe_Resume.pdf")
}

func TestPrintGallery(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintGallery([]RenderSummary{
		{Template: "modern", Pages: 1, Bytes: 900},
		{Template: "legal", Err: errors.New("boom")},
	})
	output := buf.String()

	assert.Contains(t, output, "TEMPLATE GALLERY")
	assert.Contains(t, output, "✓ modern")
	assert.Contains(t, output, "✗ legal")
	assert.Contains(t, output, "1 rendered, 1 failed")
}

func TestPrintViolations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolations(nil)
	assert.Contains(t, buf.String(), "DOCUMENT CHECKS PASSED")

	buf.Reset()
	p.PrintViolations(&types.Violations{Violations: []types.Violation{
		{Type: types.ViolationPageOverflow, Severity: types.SeverityWarning, Details: "Resume has 3 pages, maximum allowed is 2"},
	}})
	assert.Contains(t, buf.String(), "page_overflow (warning)")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCatalog([]string{strings.Repeat("x", 100)}, []string{"blue"})

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
