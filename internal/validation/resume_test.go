package validation

import (
	"testing"

	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/stretchr/testify/assert"
)

func validResume() *types.ResumeData {
	return &types.ResumeData{
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Experience:   []types.Experience{{Company: "Acme", Position: "Engineer"}},
		Education:    []types.Education{{Institution: "State University", Degree: "BSc"}},
		Skills:       []types.SkillCategory{{Category: "Languages", Skills: []string{"Go"}}},
	}
}

func TestValidateResume_Empty(t *testing.T) {
	result := ValidateResume(&types.ResumeData{})

	assert.False(t, result.Valid)
	assert.Equal(t, []string{
		"Full name is required",
		"Email is required",
		"At least one work experience is required",
		"At least one education entry is required",
		"At least one skill category with skills is required",
	}, result.Errors)
}

func TestValidateResume_Nil(t *testing.T) {
	result := ValidateResume(nil)
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 5)
}

func TestValidateResume_Valid(t *testing.T) {
	result := ValidateResume(validResume())
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.NotNil(t, result.Errors)
}

func TestValidateResume_SingleFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.ResumeData)
		want   string
	}{
		{"blank name", func(d *types.ResumeData) { d.PersonalInfo.FullName = "   " }, MsgFullNameRequired},
		{"missing email", func(d *types.ResumeData) { d.PersonalInfo.Email = "" }, MsgEmailRequired},
		{"no experience", func(d *types.ResumeData) { d.Experience = nil }, MsgExperienceRequired},
		{"no education", func(d *types.ResumeData) { d.Education = []types.Education{} }, MsgEducationRequired},
		{"no skills", func(d *types.ResumeData) { d.Skills = nil }, MsgSkillsRequired},
		{"empty skill categories", func(d *types.ResumeData) {
			d.Skills = []types.SkillCategory{{Category: "Languages"}, {Category: "Tools", Skills: []string{" "}}}
		}, MsgSkillsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validResume()
			tt.mutate(data)

			result := ValidateResume(data)
			assert.False(t, result.Valid)
			assert.Equal(t, []string{tt.want}, result.Errors)
		})
	}
}
