package rendering

import (
	"strings"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Section identifies one semantic block of resume content.
type Section string

const (
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionLanguages      Section = "languages"
)

var sectionTitles = map[Section]string{
	SectionSummary:        "Professional Summary",
	SectionExperience:     "Experience",
	SectionEducation:      "Education",
	SectionSkills:         "Skills",
	SectionProjects:       "Projects",
	SectionCertifications: "Certifications",
	SectionLanguages:      "Languages",
}

// Vertical reserves handed to EnsureSpace, in mm.
const (
	lineReserve  = 5.0
	titleReserve = 15.0
	entryReserve = 30.0
	itemReserve  = 18.0
)

// Align controls horizontal placement of the header block.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// ink is the set of colors used inside one column. Sidebars drawn on a
// colored background use a different ink from the main column.
type ink struct {
	Heading RGB
	Text    RGB
	Muted   RGB
	Rule    RGB
}

// style carries the typography and colors shared by all section renderers.
type style struct {
	family       string
	size         float64
	lineHeight   float64
	scheme       ColorScheme
	ink          ink
	projectLinks bool
}

func (s style) withInk(i ink) style {
	s.ink = i
	return s
}

func (s style) gap() float64 {
	return s.lineHeight * 0.6
}

type sectionRenderer func(c *Canvas, data *types.ResumeData, st style, col Column, cur Cursor) Cursor

var sectionRenderers = map[Section]sectionRenderer{
	SectionSummary:        renderSummary,
	SectionExperience:     renderExperience,
	SectionEducation:      renderEducation,
	SectionSkills:         renderSkills,
	SectionProjects:       renderProjects,
	SectionCertifications: renderCertifications,
	SectionLanguages:      renderLanguages,
}

// hasContent is the length guard applied before a section renderer is
// invoked; sections without content produce no heading at all.
func hasContent(section Section, data *types.ResumeData) bool {
	switch section {
	case SectionSummary:
		return strings.TrimSpace(data.PersonalInfo.Summary) != ""
	case SectionExperience:
		return len(data.Experience) > 0
	case SectionEducation:
		return len(data.Education) > 0
	case SectionSkills:
		for _, category := range data.Skills {
			if category.HasSkills() {
				return true
			}
		}
		return false
	case SectionProjects:
		return len(data.Projects) > 0
	case SectionCertifications:
		return len(data.Certifications) > 0
	case SectionLanguages:
		return len(data.Languages) > 0
	default:
		return false
	}
}

// renderHeader writes the name, a short rule and the contact lines.
func renderHeader(c *Canvas, info types.PersonalInfo, st style, col Column, cur Cursor, align Align, nameSize float64) Cursor {
	c.SetFont(st.family, "B", nameSize)
	c.SetTextColor(st.ink.Heading)
	for _, line := range c.WrapText(info.FullName, col.Width) {
		cur.Y += nameSize * ptToMM
		writeAligned(c, line, col, cur.Y, align)
	}

	cur.Y += 3
	ruleWidth := 30.0
	if ruleWidth > col.Width {
		ruleWidth = col.Width
	}
	ruleX := col.X
	if align == AlignCenter {
		ruleX = col.X + (col.Width-ruleWidth)/2
	}
	c.SetDrawColor(st.ink.Rule)
	c.SetLineWidth(0.6)
	c.DrawLine(ruleX, cur.Y, ruleX+ruleWidth, cur.Y)
	cur.Y += st.lineHeight

	c.SetFont(st.family, "", st.size-1)
	c.SetTextColor(st.ink.Muted)
	contact := joinPresent(" | ", info.Email, info.Phone, info.Location)
	links := joinPresent(" | ",
		labeled("LinkedIn", info.LinkedIn),
		labeled("GitHub", info.GitHub),
		labeled("Website", info.Website),
	)
	for _, text := range []string{contact, links} {
		for _, line := range c.WrapText(text, col.Width) {
			writeAligned(c, line, col, cur.Y, align)
			cur.Y += st.lineHeight
		}
	}

	cur.Y += st.gap()
	return cur
}

// renderSectionTitle writes the uppercase heading with an accent underline.
func renderSectionTitle(c *Canvas, title string, st style, col Column, cur Cursor) Cursor {
	cur = c.EnsureSpace(cur, titleReserve)
	c.SetFont(st.family, "B", st.size+2)
	c.SetTextColor(st.ink.Heading)
	c.WriteText(strings.ToUpper(title), col.X, cur.Y)
	cur.Y += 1.5
	c.SetDrawColor(st.ink.Rule)
	c.SetLineWidth(0.4)
	c.DrawLine(col.X, cur.Y, col.X+col.Width, cur.Y)
	cur.Y += st.lineHeight
	return cur
}

// renderTextSection writes a titled block of wrapped prose, checking for a
// page break before every line.
func renderTextSection(c *Canvas, title, body string, st style, col Column, cur Cursor) Cursor {
	cur = renderSectionTitle(c, title, st, col, cur)
	c.SetFont(st.family, "", st.size)
	c.SetTextColor(st.ink.Text)
	cur = writeLines(c, c.WrapText(body, col.Width), st, col.X, cur)
	return endSection(cur, st)
}

func renderSummary(c *Canvas, data *types.ResumeData, st style, col Column, cur Cursor) Cursor {
	return renderTextSection(c, sectionTitles[SectionSummary], data.PersonalInfo.Summary, st, col, cur)
}

// renderExperience keeps the start of each entry together by reserving room
// for its first lines; the remaining lines break individually.
func renderExperience(c *Canvas, data *types.ResumeData, st style, col Column, cur Cursor) Cursor {
	cur = renderSectionTitle(c, sectionTitles[SectionExperience], st, col, cur)

	for _, exp := range data.Experience {
		cur = c.EnsureSpace(cur, entryReserve)

		c.SetFont(st.family, "B", st.size)
		c.SetTextColor(st.ink.Text)
		cur = writeLines(c, c.WrapText(joinPresent(" | ", exp.Position, exp.Company), col.Width), st, col.X, cur)

		c.SetFont(st.family, "I", st.size-1)
		c.SetTextColor(st.ink.Muted)
		cur = writeLines(c, c.WrapText(joinPresent(" | ", dateRange(exp), exp.Location), col.Width), st, col.X, cur)

		if strings.TrimSpace(exp.Description) != "" {
			c.SetFont(st.family, "", st.size)
			c.SetTextColor(st.ink.Text)
			cur = writeLines(c, c.WrapText(exp.Description, col.Width), st, col.X, cur)
		}

		c.SetFont(st.family, "", st.size)
		c.SetTextColor(st.ink.Text)
		for _, achievement := range exp.Achievements {
			if strings.TrimSpace(achievement) == "" {
				continue
			}
			cur = writeBullet(c, achievement, st, col, cur)
		}

		cur.Y += st.gap()
	}
	return endSection(cur, st)
}

func renderEducation(c *Canvas, data *types.ResumeData, st style, col Column, cur Cursor) Cursor {
	cur = renderSectionTitle(c, sectionTitles[SectionEducation], st, col, cur)

	for _, edu := range data.Education {
		cur = c.EnsureSpace(cur, itemReserve)

		degree := edu.Degree
		if strings.TrimSpace(edu.Field) != "" {
			degree = joinPresent(" in ", edu.Degree, edu.Field)
		}
		c.SetFont(st.family, "B", st.size)
		c.SetTextColor(st.ink.Text)
		cur = writeLines(c, c.WrapText(degree, col.Width), st, col.X, cur)

		c.SetFont(st.family, "", st.size)
		cur = writeLines(c, c.WrapText(edu.Institution, col.Width), st, col.X, cur)

		c.SetFont(st.family, "", st.size-1)
		c.SetTextColor(st.ink.Muted)
		cur = writeLines(c, c.WrapText(labeled("Graduated", edu.GraduationDate), col.Width), st, col.X, cur)
		cur = writeLines(c, c.WrapText(labeled("GPA", edu.GPA), col.Width), st, col.X, cur)
		cur = writeLines(c, c.WrapText(edu.Honors, col.Width), st, col.X, cur)

		cur.Y += st.gap()
	}
	return endSection(cur, st)
}

// renderSkills emits nothing at all for categories without skills.
func renderSkills(c *Canvas, data *types.ResumeData, st style, col Column, cur Cursor) Cursor {
	cur = renderSectionTitle(c, sectionTitles[SectionSkills], st, col, cur)

	for _, category := range data.Skills {
		if !category.HasSkills() {
			continue
		}
		cur = c.EnsureSpace(cur, st.lineHeight*2)

		c.SetFont(st.family, "B", st.size)
		c.SetTextColor(st.ink.Text)
		cur = writeLines(c, c.WrapText(category.Category, col.Width), st, col.X, cur)

		c.SetFont(st.family, "", st.size)
		cur = writeLines(c, c.WrapText(joinPresent(", ", category.Skills...), col.Width), st, col.X, cur)
		cur.Y += st.gap() / 2
	}
	return endSection(cur, st)
}

func renderProjects(c *Canvas, data *types.ResumeData, st style, col Column, cur Cursor) Cursor {
	cur = renderSectionTitle(c, sectionTitles[SectionProjects], st, col, cur)

	for _, project := range data.Projects {
		cur = c.EnsureSpace(cur, itemReserve)

		c.SetFont(st.family, "B", st.size)
		c.SetTextColor(st.ink.Text)
		cur = writeLines(c, c.WrapText(project.Name, col.Width), st, col.X, cur)

		if tech := joinPresent(", ", project.Technologies...); tech != "" {
			c.SetFont(st.family, "I", st.size-1)
			c.SetTextColor(st.ink.Muted)
			cur = writeLines(c, c.WrapText("Technologies: "+tech, col.Width), st, col.X, cur)
		}

		c.SetFont(st.family, "", st.size)
		c.SetTextColor(st.ink.Text)
		cur = writeLines(c, c.WrapText(project.Description, col.Width), st, col.X, cur)

		if st.projectLinks {
			links := joinPresent(" | ", labeled("Link", project.Link), labeled("Source", project.GitHub))
			if links != "" {
				c.SetFont(st.family, "", st.size-2)
				c.SetTextColor(st.scheme.Accent)
				cur = writeLines(c, c.WrapText(links, col.Width), st, col.X, cur)
			}
		}

		cur.Y += st.gap()
	}
	return endSection(cur, st)
}

func renderCertifications(c *Canvas, data *types.ResumeData, st style, col Column, cur Cursor) Cursor {
	cur = renderSectionTitle(c, sectionTitles[SectionCertifications], st, col, cur)

	for _, cert := range data.Certifications {
		cur = c.EnsureSpace(cur, itemReserve)

		c.SetFont(st.family, "B", st.size)
		c.SetTextColor(st.ink.Text)
		cur = writeLines(c, c.WrapText(cert.Name, col.Width), st, col.X, cur)

		c.SetFont(st.family, "", st.size-1)
		c.SetTextColor(st.ink.Muted)
		cur = writeLines(c, c.WrapText(joinPresent(" | ", cert.Issuer, cert.Date), col.Width), st, col.X, cur)
		cur = writeLines(c, c.WrapText(labeled("Credential ID", cert.CredentialID), col.Width), st, col.X, cur)

		cur.Y += st.gap() / 2
	}
	return endSection(cur, st)
}

func renderLanguages(c *Canvas, data *types.ResumeData, st style, col Column, cur Cursor) Cursor {
	cur = renderSectionTitle(c, sectionTitles[SectionLanguages], st, col, cur)

	pairs := make([]string, 0, len(data.Languages))
	for _, lang := range data.Languages {
		name := strings.TrimSpace(lang.Language)
		if name == "" {
			continue
		}
		if level := strings.TrimSpace(lang.Proficiency); level != "" {
			name += " (" + level + ")"
		}
		pairs = append(pairs, name)
	}

	c.SetFont(st.family, "", st.size)
	c.SetTextColor(st.ink.Text)
	cur = writeLines(c, c.WrapText(strings.Join(pairs, " • "), col.Width), st, col.X, cur)
	return endSection(cur, st)
}

// writeLines writes pre-wrapped lines at x, advancing one line height each.
// EnsureSpace runs before every line.
func writeLines(c *Canvas, lines []string, st style, x float64, cur Cursor) Cursor {
	for _, line := range lines {
		cur = c.EnsureSpace(cur, lineReserve)
		c.WriteText(line, x, cur.Y)
		cur.Y += st.lineHeight
	}
	return cur
}

// writeBullet writes a bullet glyph with the text hanging-indented beside it.
func writeBullet(c *Canvas, text string, st style, col Column, cur Cursor) Cursor {
	const indent = 5.0
	lines := c.WrapText(text, col.Width-indent)
	if len(lines) == 0 {
		return cur
	}
	cur = c.EnsureSpace(cur, lineReserve)
	c.WriteText("•", col.X+1, cur.Y)
	return writeLines(c, lines, st, col.X+indent, cur)
}

func writeAligned(c *Canvas, text string, col Column, y float64, align Align) {
	if align == AlignCenter {
		c.WriteCentered(text, col, y)
		return
	}
	c.WriteText(text, col.X, y)
}

func endSection(cur Cursor, st style) Cursor {
	cur.Y += st.gap()
	return cur
}

// dateRange formats "start - end", substituting "Present" for current roles.
func dateRange(exp types.Experience) string {
	end := exp.EndDate
	if exp.Current {
		end = "Present"
	}
	return joinPresent(" - ", exp.StartDate, end)
}

// joinPresent joins the non-blank parts so absent fields leave no dangling
// separators.
func joinPresent(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, sep)
}

// labeled returns "Label: value", or "" when value is blank.
func labeled(label, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return label + ": " + value
}
