package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/types"
)

// NormalizeResume returns a cleaned copy of data. Free-text fields are
// converted from HTML and whitespace-normalized; one-line fields are
// collapsed to a single line. data itself is left untouched.
func NormalizeResume(data *types.ResumeData) (*types.ResumeData, error) {
	if data == nil {
		return nil, fmt.Errorf("resume data is nil")
	}

	out := *data
	n := normalizer{}

	info := &out.PersonalInfo
	info.FullName = SingleLine(info.FullName)
	info.Email = SingleLine(info.Email)
	info.Phone = SingleLine(info.Phone)
	info.Location = SingleLine(info.Location)
	info.LinkedIn = SingleLine(info.LinkedIn)
	info.GitHub = SingleLine(info.GitHub)
	info.Website = SingleLine(info.Website)
	info.Summary = n.text(info.Summary)

	out.Experience = make([]types.Experience, len(data.Experience))
	for i, exp := range data.Experience {
		exp.Company = SingleLine(exp.Company)
		exp.Position = SingleLine(exp.Position)
		exp.Location = SingleLine(exp.Location)
		exp.StartDate = SingleLine(exp.StartDate)
		exp.EndDate = SingleLine(exp.EndDate)
		exp.Description = n.text(exp.Description)
		exp.Achievements = n.lines(exp.Achievements)
		out.Experience[i] = exp
	}

	out.Education = make([]types.Education, len(data.Education))
	for i, edu := range data.Education {
		edu.Institution = SingleLine(edu.Institution)
		edu.Degree = SingleLine(edu.Degree)
		edu.Field = SingleLine(edu.Field)
		edu.GraduationDate = SingleLine(edu.GraduationDate)
		edu.GPA = SingleLine(edu.GPA)
		edu.Honors = SingleLine(n.text(edu.Honors))
		out.Education[i] = edu
	}

	out.Skills = make([]types.SkillCategory, len(data.Skills))
	for i, category := range data.Skills {
		category.Category = SingleLine(category.Category)
		category.Skills = singleLines(category.Skills)
		out.Skills[i] = category
	}

	out.Projects = make([]types.Project, len(data.Projects))
	for i, project := range data.Projects {
		project.Name = SingleLine(project.Name)
		project.Description = n.text(project.Description)
		project.Technologies = singleLines(project.Technologies)
		project.Link = SingleLine(project.Link)
		project.GitHub = SingleLine(project.GitHub)
		out.Projects[i] = project
	}

	out.Certifications = make([]types.Certification, len(data.Certifications))
	for i, cert := range data.Certifications {
		cert.Name = SingleLine(cert.Name)
		cert.Issuer = SingleLine(cert.Issuer)
		cert.Date = SingleLine(cert.Date)
		cert.CredentialID = SingleLine(cert.CredentialID)
		out.Certifications[i] = cert
	}

	out.Languages = make([]types.Language, len(data.Languages))
	for i, lang := range data.Languages {
		lang.Language = SingleLine(lang.Language)
		lang.Proficiency = SingleLine(lang.Proficiency)
		out.Languages[i] = lang
	}

	if n.err != nil {
		return nil, n.err
	}
	return &out, nil
}

// normalizer keeps the first HTML error so the field loop stays flat.
type normalizer struct {
	err error
}

func (n *normalizer) text(s string) string {
	if n.err != nil {
		return s
	}
	out, err := HTMLToText(s)
	if err != nil {
		n.err = err
		return s
	}
	return out
}

// lines cleans each entry; blank entries are kept so renderers can drop them.
func (n *normalizer) lines(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = SingleLine(n.text(s))
	}
	return out
}

func singleLines(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = SingleLine(s)
	}
	return out
}

// DecodeResume checks content against the resume schema, decodes it and
// normalizes the result.
func DecodeResume(content []byte) (*types.ResumeData, error) {
	if err := schemas.ValidateResume(content); err != nil {
		return nil, fmt.Errorf("resume does not match schema: %w", err)
	}

	var data types.ResumeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
	}
	return NormalizeResume(&data)
}

// IngestFromFile reads, checks and normalizes a resume JSON file.
func IngestFromFile(path string) (*types.ResumeData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return DecodeResume(content)
}
