package rendering

import (
	"strings"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Option defaults applied by the orchestrator.
const (
	DefaultFont       = "helvetica"
	DefaultFontSize   = 11.0
	DefaultLineHeight = 5.5
	DefaultMargin     = 15.0
)

const (
	bannerHeight = 42.0
	sideInset    = 7.0
	columnGutter = 8.0
)

var fontAliases = map[string]string{
	"helvetica":       "helvetica",
	"arial":           "helvetica",
	"sans":            "helvetica",
	"sans-serif":      "helvetica",
	"times":           "times",
	"times new roman": "times",
	"serif":           "times",
	"courier":         "courier",
	"mono":            "courier",
	"monospace":       "courier",
}

// ResolveFont maps a font option onto one of the three core families.
// Unknown names resolve to DefaultFont.
func ResolveFont(name string) string {
	if family, ok := fontAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return family
	}
	return DefaultFont
}

// SchemeFor returns the color scheme a render with the named template and
// requested scheme would use.
func SchemeFor(template, requested string) string {
	return schemeName(LookupTemplate(template), requested)
}

// schemeName picks the palette for tpl. A forced scheme always wins, an
// empty request takes the template default and an unknown request resolves
// like ResolveColorScheme does.
func schemeName(tpl Template, requested string) string {
	if tpl.ForcedScheme != "" {
		return tpl.ForcedScheme
	}
	requested = strings.ToLower(strings.TrimSpace(requested))
	if requested == "" {
		return tpl.DefaultScheme
	}
	if IsColorScheme(requested) {
		return requested
	}
	return DefaultColorScheme
}

func mainInk(s ColorScheme) ink {
	return ink{Heading: s.Primary, Text: s.Text, Muted: s.TextLight, Rule: s.Accent}
}

func newStyle(tpl Template, opts types.Options) style {
	family := tpl.Font
	if family == "" {
		family = ResolveFont(opts.Font)
	}
	scheme := ResolveColorScheme(schemeName(tpl, opts.ColorScheme))
	return style{
		family:       family,
		size:         opts.FontSize,
		lineHeight:   opts.LineHeight,
		scheme:       scheme,
		ink:          mainInk(scheme),
		projectLinks: tpl.ProjectLinks,
	}
}

// compose lays out the whole resume according to tpl and returns the final
// cursor of whichever column ended last.
func compose(c *Canvas, data *types.ResumeData, tpl Template, st style) Cursor {
	switch tpl.Layout {
	case LayoutSidebar:
		return composeSidebar(c, data, tpl, st)
	case LayoutBanner:
		return composeBanner(c, data, tpl, st)
	default:
		return composeSingle(c, data, tpl, st)
	}
}

func composeSingle(c *Canvas, data *types.ResumeData, tpl Template, st style) Cursor {
	margin := c.Margin()
	col := Column{X: margin, Width: c.PageWidth() - 2*margin}
	cur := Cursor{Page: 1, Y: margin}

	cur = renderHeader(c, data.PersonalInfo, st, col, cur, tpl.HeaderAlign, st.size*2.2)
	return renderSections(c, data, tpl.Sections, st, col, cur)
}

func composeSidebar(c *Canvas, data *types.ResumeData, tpl Template, st style) Cursor {
	margin := c.Margin()

	background := st.scheme.Background
	side := st.withInk(ink{
		Heading: st.scheme.Primary,
		Text:    st.scheme.Text,
		Muted:   st.scheme.TextLight,
		Rule:    st.scheme.Primary,
	})
	if tpl.SideOnColor {
		background = st.scheme.Primary
		side = st.withInk(ink{Heading: white, Text: white, Muted: st.scheme.Background, Rule: white})
	}
	c.SetDecorator(func(c *Canvas, _ int) {
		c.SetFillColor(background)
		c.DrawRect(0, 0, tpl.SideWidth, c.PageHeight(), true)
	})

	sideCol := Column{X: sideInset, Width: tpl.SideWidth - 2*sideInset}
	mainX := tpl.SideWidth + columnGutter
	mainCol := Column{X: mainX, Width: c.PageWidth() - mainX - margin}
	start := Cursor{Page: 1, Y: margin}

	sideCur := renderHeader(c, data.PersonalInfo, side, sideCol, start, AlignLeft, st.size*1.7)
	sideCur = renderSections(c, data, tpl.SideSections, side, sideCol, sideCur)

	c.MoveTo(start)
	mainCur := renderSections(c, data, tpl.Sections, st, mainCol, start)
	return later(sideCur, mainCur)
}

func composeBanner(c *Canvas, data *types.ResumeData, tpl Template, st style) Cursor {
	margin := c.Margin()

	c.SetDecorator(func(c *Canvas, page int) {
		if page != 1 {
			return
		}
		c.SetFillColor(st.scheme.Primary)
		c.DrawRect(0, 0, c.PageWidth(), bannerHeight, true)
	})

	banner := st.withInk(ink{Heading: white, Text: white, Muted: white, Rule: white})
	full := Column{X: margin, Width: c.PageWidth() - 2*margin}
	headerEnd := renderHeader(c, data.PersonalInfo, banner, full, Cursor{Page: 1, Y: margin - 3}, tpl.HeaderAlign, st.size*2.2)

	startY := bannerHeight + 10
	if headerEnd.Y+5 > startY {
		startY = headerEnd.Y + 5
	}
	start := Cursor{Page: 1, Y: startY}

	sideCol := Column{X: margin, Width: tpl.SideWidth}
	mainX := margin + tpl.SideWidth + columnGutter
	mainCol := Column{X: mainX, Width: c.PageWidth() - mainX - margin}

	sideCur := renderSections(c, data, tpl.SideSections, st, sideCol, start)
	c.MoveTo(start)
	mainCur := renderSections(c, data, tpl.Sections, st, mainCol, start)
	return later(sideCur, mainCur)
}

// renderSections runs each listed section renderer whose section has content.
func renderSections(c *Canvas, data *types.ResumeData, sections []Section, st style, col Column, cur Cursor) Cursor {
	for _, section := range sections {
		if !hasContent(section, data) {
			continue
		}
		cur = sectionRenderers[section](c, data, st, col, cur)
	}
	return cur
}

func later(a, b Cursor) Cursor {
	if a.Page != b.Page {
		if a.Page > b.Page {
			return a
		}
		return b
	}
	if a.Y > b.Y {
		return a
	}
	return b
}
