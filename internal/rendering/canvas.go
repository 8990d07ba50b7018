package rendering

import (
	"bytes"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"
)

// ptToMM converts a font size in points to document units.
const ptToMM = 25.4 / 72

// documentEpoch is stamped as the PDF creation and modification date so that
// identical input always produces identical bytes.
var documentEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Cursor is the vertical write position inside a column.
// Page is 1-based and always matches the canvas page being written to.
type Cursor struct {
	Page int
	Y    float64
}

// Column is a horizontal region that section renderers wrap text into.
type Column struct {
	X     float64
	Width float64
}

// TextRun records one line of text placed on the canvas.
type TextRun struct {
	Page  int
	X     float64
	Y     float64
	Style string
	Size  float64
	Text  string
}

// Canvas is the drawing surface for a single render. It is not safe for
// concurrent use and must never be shared between two renders.
type Canvas struct {
	pdf        *gofpdf.Fpdf
	translate  func(string) string
	pageWidth  float64
	pageHeight float64
	margin     float64

	family    string
	style     string
	size      float64
	textColor RGB
	fillColor RGB
	drawColor RGB
	lineWidth float64

	// decorate paints page furniture (sidebars, banners) on each new page.
	decorate func(c *Canvas, page int)

	runs []TextRun
}

// NewCanvas creates an A4 portrait canvas in millimetres with one blank page.
func NewCanvas(margin float64) *Canvas {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(documentEpoch)
	pdf.SetModificationDate(documentEpoch)

	width, height := pdf.GetPageSize()
	c := &Canvas{
		pdf:        pdf,
		translate:  pdf.UnicodeTranslatorFromDescriptor(""),
		pageWidth:  width,
		pageHeight: height,
		margin:     margin,
		lineWidth:  0.2,
	}
	pdf.AddPage()
	c.SetFont(DefaultFont, "", DefaultFontSize)
	return c
}

// PageWidth returns the page width in mm.
func (c *Canvas) PageWidth() float64 { return c.pageWidth }

// PageHeight returns the page height in mm.
func (c *Canvas) PageHeight() float64 { return c.pageHeight }

// Margin returns the page margin in mm.
func (c *Canvas) Margin() float64 { return c.margin }

// PageCount returns the number of pages created so far.
func (c *Canvas) PageCount() int { return c.pdf.PageCount() }

// Runs returns the text journal in write order.
func (c *Canvas) Runs() []TextRun { return c.runs }

// SetMetadata fills the PDF document information dictionary.
func (c *Canvas) SetMetadata(title, author string) {
	c.pdf.SetTitle(title, true)
	c.pdf.SetAuthor(author, true)
	c.pdf.SetCreator("resume-pdf", true)
}

// SetDecorator installs the page furniture painter and applies it to the
// current page immediately.
func (c *Canvas) SetDecorator(fn func(c *Canvas, page int)) {
	c.decorate = fn
	if fn != nil {
		fn(c, c.pdf.PageNo())
	}
}

func (c *Canvas) SetTextColor(color RGB) {
	c.textColor = color
	c.pdf.SetTextColor(color.R, color.G, color.B)
}

func (c *Canvas) SetFillColor(color RGB) {
	c.fillColor = color
	c.pdf.SetFillColor(color.R, color.G, color.B)
}

func (c *Canvas) SetDrawColor(color RGB) {
	c.drawColor = color
	c.pdf.SetDrawColor(color.R, color.G, color.B)
}

func (c *Canvas) SetLineWidth(width float64) {
	c.lineWidth = width
	c.pdf.SetLineWidth(width)
}

// SetFont selects one of the core families ("helvetica", "times", "courier").
// Style is "", "B", "I" or "BI"; size is in points.
func (c *Canvas) SetFont(family, style string, size float64) {
	c.family, c.style, c.size = family, style, size
	c.pdf.SetFont(family, style, size)
}

// WriteText places a single line with its baseline at y. It neither wraps
// nor breaks pages.
func (c *Canvas) WriteText(text string, x, y float64) {
	if text == "" {
		return
	}
	c.pdf.Text(x, y, c.translate(text))
	c.runs = append(c.runs, TextRun{
		Page:  c.pdf.PageNo(),
		X:     x,
		Y:     y,
		Style: c.style,
		Size:  c.size,
		Text:  text,
	})
}

// WriteCentered places a single line centered inside col.
func (c *Canvas) WriteCentered(text string, col Column, y float64) {
	x := col.X + (col.Width-c.TextWidth(text))/2
	if x < col.X {
		x = col.X
	}
	c.WriteText(text, x, y)
}

// TextWidth measures text in the current font.
func (c *Canvas) TextWidth(text string) float64 {
	return c.pdf.GetStringWidth(c.translate(text))
}

// WrapText splits text into lines no wider than maxWidth using the current
// font. Newlines start a new paragraph, blank paragraphs are dropped and words
// wider than maxWidth are split by character.
func (c *Canvas) WrapText(text string, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(paragraph) {
			for c.TextWidth(word) > maxWidth && utf8.RuneCountInString(word) > 1 {
				head, tail := c.splitWord(word, maxWidth)
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, head)
				word = tail
			}

			if line == "" {
				line = word
				continue
			}
			candidate := line + " " + word
			if c.TextWidth(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// splitWord returns the longest rune prefix of word that fits maxWidth
// (at least one rune) and the remainder.
func (c *Canvas) splitWord(word string, maxWidth float64) (string, string) {
	runes := []rune(word)
	cut := 1
	for i := 2; i < len(runes); i++ {
		if c.TextWidth(string(runes[:i])) > maxWidth {
			break
		}
		cut = i
	}
	return string(runes[:cut]), string(runes[cut:])
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *Canvas) DrawRect(x, y, w, h float64, filled bool) {
	style := "D"
	if filled {
		style = "F"
	}
	c.pdf.Rect(x, y, w, h, style)
}

// EnsureSpace is the only page-break decision point. When cur.Y lies below
// pageHeight - margin - reserve the cursor moves to the top of the next page,
// appending one if the column is already on the last page.
func (c *Canvas) EnsureSpace(cur Cursor, reserve float64) Cursor {
	if cur.Y <= c.pageHeight-c.margin-reserve {
		return cur
	}
	next := cur.Page + 1
	if next <= c.pdf.PageCount() {
		c.setPage(next)
	} else {
		c.setPage(c.pdf.PageCount())
		c.addPage()
	}
	return Cursor{Page: next, Y: c.margin}
}

// MoveTo makes cur's page the active page, used when switching columns.
func (c *Canvas) MoveTo(cur Cursor) {
	c.setPage(cur.Page)
}

func (c *Canvas) addPage() {
	c.pdf.AddPage()
	if c.decorate != nil {
		c.decorate(c, c.pdf.PageNo())
	}
	c.restoreState()
}

func (c *Canvas) setPage(page int) {
	if page == c.pdf.PageNo() {
		return
	}
	c.pdf.SetPage(page)
	c.restoreState()
}

// restoreState re-emits font, colors and line width into the active page's
// content stream. gofpdf only emits a font change when it differs from its
// own state, so the size is toggled to force it.
func (c *Canvas) restoreState() {
	if c.family != "" {
		c.pdf.SetFont(c.family, c.style, c.size+1)
		c.pdf.SetFont(c.family, c.style, c.size)
	}
	c.pdf.SetLineWidth(c.lineWidth)
	c.pdf.SetDrawColor(c.drawColor.R, c.drawColor.G, c.drawColor.B)
	c.pdf.SetFillColor(c.fillColor.R, c.fillColor.G, c.fillColor.B)
	c.pdf.SetTextColor(c.textColor.R, c.textColor.G, c.textColor.B)
}

// output serializes the document. Any error recorded by gofpdf during layout
// surfaces here.
func (c *Canvas) output() ([]byte, error) {
	if err := c.pdf.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
