package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlTag = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(\s[^<>]*)?/?>`)

const blockSelector = "p, div, ul, ol, h1, h2, h3, h4, h5, h6, blockquote, pre, tr"

// LooksLikeHTML reports whether s contains at least one HTML tag.
func LooksLikeHTML(s string) bool {
	return htmlTag.MatchString(s)
}

// HTMLToText converts rich-text editor output to plain text. Block elements
// and <br> become line breaks, list items become "- " lines and scripts and
// styles are dropped. Text without tags is only cleaned.
func HTMLToText(s string) (string, error) {
	if !LooksLikeHTML(s) {
		return CleanText(s), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, sel *goquery.Selection) {
		sel.PrependHtml("- ")
		sel.AppendHtml("\n")
	})
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	return CleanText(doc.Find("body").Text()), nil
}
