// Package ingestion loads resume documents and normalizes their free-text
// fields before rendering.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	runsOfSpace = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankRuns   = regexp.MustCompile(`\n\n\n+`)
)

// CleanText cleans and normalizes text content while preserving structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	result := strings.Join(cleanedLines, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses inner whitespace. Bullet markers are normalized to
// "- " so that lists survive as separate lines.
func cleanLine(line string) string {
	content := strings.TrimSpace(runsOfSpace.ReplaceAllString(line, " "))
	if content == "" {
		return ""
	}
	if isBulletLine(content) {
		_, rest, _ := strings.Cut(content, " ")
		return "- " + strings.TrimSpace(rest)
	}
	return content
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}

// SingleLine cleans s and joins its lines with single spaces. Used for
// fields that are always rendered on one line, like names and dates.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
