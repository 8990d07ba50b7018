package rendering

import (
	"testing"

	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestResolveColorScheme(t *testing.T) {
	assert.Equal(t, colorSchemes["green"], ResolveColorScheme("green"))
	assert.Equal(t, colorSchemes["gray"], ResolveColorScheme("  GRAY "))
	assert.Equal(t, colorSchemes["blue"], ResolveColorScheme("teal"))
	assert.Equal(t, colorSchemes["blue"], ResolveColorScheme(""))
}

func TestColorSchemes(t *testing.T) {
	assert.Equal(t, []string{"blue", "gray", "green", "orange", "purple", "red"}, ColorSchemes())
	assert.True(t, IsColorScheme("Orange"))
	assert.False(t, IsColorScheme("teal"))
}

func TestTemplates(t *testing.T) {
	assert.Equal(t, []string{
		"academic", "classic", "creative", "designer", "executive",
		"healthcare", "legal", "modern", "startup", "technical",
	}, Templates())
}

func TestLookupTemplate(t *testing.T) {
	assert.Equal(t, "executive", LookupTemplate("Executive").Name)
	assert.Equal(t, DefaultTemplate, LookupTemplate("").Name)
	assert.Equal(t, DefaultTemplate, LookupTemplate("nonexistent").Name)
	assert.True(t, IsTemplate("legal"))
	assert.False(t, IsTemplate("nonexistent"))
}

func TestTemplateDescriptors(t *testing.T) {
	for name, tpl := range templates {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, tpl.Name)
			assert.NotEmpty(t, tpl.Sections)
			if tpl.ForcedScheme == "" {
				assert.True(t, IsColorScheme(tpl.DefaultScheme))
			} else {
				assert.True(t, IsColorScheme(tpl.ForcedScheme))
			}
			if tpl.Layout != LayoutSingle {
				assert.NotEmpty(t, tpl.SideSections)
				assert.Greater(t, tpl.SideWidth, 0.0)
			}

			seen := map[Section]bool{}
			for _, s := range append(append([]Section{}, tpl.Sections...), tpl.SideSections...) {
				assert.False(t, seen[s], "section %s listed twice", s)
				assert.Contains(t, sectionRenderers, s)
				seen[s] = true
			}
		})
	}
}

func TestTemplateSectionOrder(t *testing.T) {
	doc, err := Generate(fullResume(), types.Options{Template: "academic"})
	if !assert.NoError(t, err) {
		return
	}

	var headings []string
	for _, run := range doc.Runs() {
		switch run.Text {
		case "EDUCATION", "PROFESSIONAL SUMMARY", "EXPERIENCE", "CERTIFICATIONS", "SKILLS", "LANGUAGES", "PROJECTS":
			headings = append(headings, run.Text)
		}
	}
	assert.Equal(t, []string{
		"EDUCATION", "PROFESSIONAL SUMMARY", "EXPERIENCE", "CERTIFICATIONS", "SKILLS", "LANGUAGES",
	}, headings)
}

func TestLegalOmitsSkillsAndProjects(t *testing.T) {
	doc, err := Generate(fullResume(), types.Options{Template: "legal"})
	if !assert.NoError(t, err) {
		return
	}
	assert.Zero(t, countRuns(doc, "SKILLS"))
	assert.Zero(t, countRuns(doc, "PROJECTS"))
}

func TestProjectLinksFollowTemplate(t *testing.T) {
	links := "Link: pdfkit.dev | Source: github.com/janedoe/pdfkit"

	doc, err := Generate(fullResume(), types.Options{Template: "technical"})
	if assert.NoError(t, err) {
		assert.Contains(t, doc.Lines(), links)
	}

	doc, err = Generate(fullResume(), types.Options{Template: "classic"})
	if assert.NoError(t, err) {
		assert.NotContains(t, doc.Lines(), links)
		assert.Contains(t, doc.Lines(), "pdfkit")
	}
}

func TestSidebarColumnsShareFirstPage(t *testing.T) {
	doc, err := Generate(fullResume(), types.Options{Template: "creative"})
	if !assert.NoError(t, err) {
		return
	}

	var skillsX, experienceX float64
	for _, run := range doc.Runs() {
		switch run.Text {
		case "SKILLS":
			skillsX = run.X
			assert.Equal(t, 1, run.Page)
		case "EXPERIENCE":
			experienceX = run.X
			assert.Equal(t, 1, run.Page)
		}
	}
	assert.Less(t, skillsX, experienceX)
}

func TestSchemeFor(t *testing.T) {
	assert.Equal(t, "gray", SchemeFor("classic", ""))
	assert.Equal(t, "red", SchemeFor("classic", "Red"))
	assert.Equal(t, DefaultColorScheme, SchemeFor("classic", "teal"))
	assert.Equal(t, "green", SchemeFor("healthcare", "purple"))
	assert.Equal(t, "blue", SchemeFor("nonexistent", ""))
}
