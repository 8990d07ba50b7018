package rendering

import (
	"fmt"

	"github.com/jonathan/resume-pdf/internal/types"
)

// minimalResume has exactly what the validation gate requires.
func minimalResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: types.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		},
		Experience: []types.Experience{
			{Company: "Acme Corp", Position: "Software Engineer", StartDate: "Jan 2020", EndDate: "Dec 2022"},
		},
		Education: []types.Education{
			{Institution: "State University", Degree: "BSc", Field: "Computer Science"},
		},
		Skills: []types.SkillCategory{
			{Category: "Languages", Skills: []string{"Go", "SQL"}},
		},
	}
}

// fullResume fills every section and optional field.
func fullResume() *types.ResumeData {
	data := minimalResume()
	data.PersonalInfo.Phone = "+1 555 0100"
	data.PersonalInfo.Location = "Berlin"
	data.PersonalInfo.Summary = "Engineer focused on reliable backend systems and developer tooling."
	data.PersonalInfo.LinkedIn = "linkedin.com/in/janedoe"
	data.PersonalInfo.GitHub = "github.com/janedoe"
	data.PersonalInfo.Website = "janedoe.dev"
	data.Experience[0].Location = "Remote"
	data.Experience[0].Description = "Owned the billing platform."
	data.Experience[0].Achievements = []string{"Cut invoice latency by 40%", "Led migration to Postgres"}
	data.Education[0].GraduationDate = "2019"
	data.Education[0].GPA = "3.8"
	data.Education[0].Honors = "Magna Cum Laude"
	data.Skills = append(data.Skills, types.SkillCategory{Category: "Tools", Skills: []string{"Docker", "Kubernetes"}})
	data.Projects = []types.Project{
		{
			Name:         "pdfkit",
			Description:  "Layout engine for printable documents.",
			Technologies: []string{"Go"},
			Link:         "pdfkit.dev",
			GitHub:       "github.com/janedoe/pdfkit",
		},
	}
	data.Certifications = []types.Certification{
		{Name: "CKA", Issuer: "CNCF", Date: "2021", CredentialID: "ABC-123"},
	}
	data.Languages = []types.Language{
		{Language: "English", Proficiency: "Native"},
		{Language: "German", Proficiency: "B2"},
	}
	return data
}

// overflowResume has enough experience to span several pages.
func overflowResume(entries int) *types.ResumeData {
	data := minimalResume()
	data.Experience = nil
	for i := 0; i < entries; i++ {
		exp := types.Experience{
			Company:     fmt.Sprintf("Company %d", i),
			Position:    "Staff Engineer",
			StartDate:   "2010",
			EndDate:     "2012",
			Description: fmt.Sprintf("Entry %d description covering a broad range of platform responsibilities across several teams.", i),
		}
		for j := 0; j < 5; j++ {
			exp.Achievements = append(exp.Achievements, fmt.Sprintf(
				"Achievement %d.%d delivered a measurable improvement to throughput, reliability and cost for the core services fleet", i, j))
		}
		data.Experience = append(data.Experience, exp)
	}
	return data
}

func countRuns(doc *Document, text string) int {
	n := 0
	for _, run := range doc.Runs() {
		if run.Text == text {
			n++
		}
	}
	return n
}
