package rendering

import (
	"sort"
	"strings"
)

// Layout is the column geometry of a template.
type Layout int

const (
	// LayoutSingle is one full-width column.
	LayoutSingle Layout = iota
	// LayoutSidebar is a full-height left sidebar beside the main column.
	LayoutSidebar
	// LayoutBanner is a colored header banner above two content columns.
	LayoutBanner
)

// Template describes one named visual layout. All templates are drawn by the
// same composer; they differ only in these fields.
type Template struct {
	Name   string
	Layout Layout

	// Font pins the family regardless of the font option when non-empty.
	Font string
	// ForcedScheme pins the palette regardless of the colorScheme option.
	ForcedScheme string
	// DefaultScheme applies when the colorScheme option is empty.
	DefaultScheme string

	HeaderAlign Align
	Sections    []Section

	// Side column settings, unused by LayoutSingle.
	SideSections []Section
	SideWidth    float64
	// SideOnColor draws the sidebar in the primary color with white text;
	// otherwise it is tinted with the scheme background.
	SideOnColor bool

	ProjectLinks bool
}

// DefaultTemplate is used for unknown or empty template names.
const DefaultTemplate = "modern"

var templates = map[string]Template{
	"modern": {
		Name:          "modern",
		Layout:        LayoutSingle,
		DefaultScheme: "blue",
		HeaderAlign:   AlignLeft,
		Sections: []Section{
			SectionSummary, SectionExperience, SectionEducation, SectionSkills,
			SectionProjects, SectionCertifications, SectionLanguages,
		},
		ProjectLinks: true,
	},
	"classic": {
		Name:          "classic",
		Layout:        LayoutSingle,
		DefaultScheme: "gray",
		HeaderAlign:   AlignCenter,
		Sections: []Section{
			SectionSummary, SectionExperience, SectionEducation, SectionSkills,
			SectionProjects, SectionCertifications, SectionLanguages,
		},
	},
	"creative": {
		Name:          "creative",
		Layout:        LayoutSidebar,
		Font:          "helvetica",
		DefaultScheme: "purple",
		Sections: []Section{
			SectionSummary, SectionExperience, SectionProjects, SectionEducation,
			SectionCertifications,
		},
		SideSections: []Section{SectionSkills, SectionLanguages},
		SideWidth:    68,
		SideOnColor:  true,
		ProjectLinks: true,
	},
	"executive": {
		Name:          "executive",
		Layout:        LayoutSingle,
		Font:          "times",
		DefaultScheme: "blue",
		HeaderAlign:   AlignCenter,
		Sections: []Section{
			SectionSummary, SectionExperience, SectionEducation, SectionSkills,
			SectionCertifications, SectionLanguages, SectionProjects,
		},
	},
	"technical": {
		Name:          "technical",
		Layout:        LayoutSingle,
		Font:          "courier",
		DefaultScheme: "gray",
		HeaderAlign:   AlignLeft,
		Sections: []Section{
			SectionSummary, SectionSkills, SectionExperience, SectionProjects,
			SectionEducation, SectionCertifications, SectionLanguages,
		},
		ProjectLinks: true,
	},
	"academic": {
		Name:          "academic",
		Layout:        LayoutSingle,
		Font:          "times",
		DefaultScheme: "blue",
		HeaderAlign:   AlignCenter,
		Sections: []Section{
			SectionEducation, SectionSummary, SectionExperience,
			SectionCertifications, SectionSkills, SectionLanguages,
		},
	},
	"startup": {
		Name:          "startup",
		Layout:        LayoutSidebar,
		Font:          "helvetica",
		DefaultScheme: "orange",
		Sections: []Section{
			SectionSummary, SectionExperience, SectionProjects, SectionEducation,
		},
		SideSections: []Section{SectionSkills, SectionCertifications, SectionLanguages},
		SideWidth:    64,
		ProjectLinks: true,
	},
	"designer": {
		Name:          "designer",
		Layout:        LayoutBanner,
		Font:          "helvetica",
		DefaultScheme: "red",
		HeaderAlign:   AlignLeft,
		Sections: []Section{
			SectionSummary, SectionExperience, SectionProjects, SectionEducation,
		},
		SideSections: []Section{SectionSkills, SectionLanguages, SectionCertifications},
		SideWidth:    58,
		ProjectLinks: true,
	},
	"healthcare": {
		Name:         "healthcare",
		Layout:       LayoutSingle,
		Font:         "helvetica",
		ForcedScheme: "green",
		HeaderAlign:  AlignLeft,
		Sections: []Section{
			SectionSummary, SectionEducation, SectionCertifications, SectionExperience,
			SectionSkills, SectionLanguages, SectionProjects,
		},
	},
	"legal": {
		Name:          "legal",
		Layout:        LayoutSingle,
		Font:          "times",
		DefaultScheme: "gray",
		HeaderAlign:   AlignCenter,
		Sections: []Section{
			SectionSummary, SectionExperience, SectionEducation,
			SectionCertifications, SectionLanguages,
		},
	},
}

// LookupTemplate returns the named template, falling back to DefaultTemplate.
func LookupTemplate(name string) Template {
	if tpl, ok := templates[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tpl
	}
	return templates[DefaultTemplate]
}

// IsTemplate reports whether name is a known template.
func IsTemplate(name string) bool {
	_, ok := templates[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Templates returns the known template names in sorted order.
func Templates() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
