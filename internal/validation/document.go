package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-pdf/internal/types"
)

// CheckDocument inspects rendered PDF bytes against the page budget.
// A maxPages of zero or less disables the page check. Parse failures are
// reported as violations rather than errors, so callers can still ship the
// document they rendered.
func CheckDocument(content []byte, maxPages int) *types.Violations {
	var all []types.Violation

	pageCount, err := CountPDFPages(content)
	if err != nil {
		all = append(all, types.Violation{
			Type:     types.ViolationUnreadable,
			Severity: types.SeverityError,
			Details:  fmt.Sprintf("Could not read rendered document: %v", err),
		})
		return &types.Violations{Violations: all, Pages: 0}
	}

	if maxPages > 0 && pageCount > maxPages {
		all = append(all, types.Violation{
			Type:     types.ViolationPageOverflow,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("Resume has %d pages, maximum allowed is %d", pageCount, maxPages),
		})
	}

	text, err := ExtractText(content)
	if err != nil {
		all = append(all, types.Violation{
			Type:     types.ViolationEmptyText,
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("Could not extract text: %v", err),
		})
	} else if strings.TrimSpace(text) == "" {
		all = append(all, types.Violation{
			Type:     types.ViolationEmptyText,
			Severity: types.SeverityWarning,
			Details:  "Rendered document contains no extractable text",
		})
	}

	return &types.Violations{Violations: all, Pages: pageCount}
}
