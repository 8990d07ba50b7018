// Package types provides type definitions for structured data used throughout the resume-pdf system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ResumeData is the structured resume supplied by the resume builder.
// It is read-only for the duration of a render.
type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         []SkillCategory `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications,omitempty"`
	Languages      []Language      `json:"languages,omitempty"`
}

// PersonalInfo holds the contact block. FullName and Email are mandatory.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience is a single work history entry
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is a single degree entry
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
	Honors         string `json:"honors,omitempty"`
}

// SkillCategory groups skills under a heading such as "Languages" or "Cloud"
type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Project is a portfolio entry
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies,omitempty"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
}

// Certification is a professional certificate
type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	Date         string `json:"date"`
	CredentialID string `json:"credentialId,omitempty"`
}

// Language is a spoken language with a proficiency label
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// HasSkills reports whether the category contains at least one non-blank skill.
func (s SkillCategory) HasSkills() bool {
	for _, skill := range s.Skills {
		if strings.TrimSpace(skill) != "" {
			return true
		}
	}
	return false
}
