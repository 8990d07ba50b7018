package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate_ZeroValueIsValid(t *testing.T) {
	opts := Options{}
	assert.NoError(t, opts.Validate())
}

func TestOptionsValidate_UnknownNamesAccepted(t *testing.T) {
	opts := Options{Template: "nonexistent", Font: "comic", ColorScheme: "neon"}
	assert.NoError(t, opts.Validate())
}

func TestOptionsValidate_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"negative font size", Options{FontSize: -1}},
		{"huge font size", Options{FontSize: 72}},
		{"tiny line height", Options{LineHeight: 0.5}},
		{"margin too wide", Options{Margin: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.opts.Validate())
		})
	}
}

func TestResumeData_UnmarshalCamelCase(t *testing.T) {
	raw := `{
		"personalInfo": {"fullName": "Ada Lovelace", "email": "ada@example.com", "linkedin": "in/ada"},
		"experience": [{"company": "Analytical Engines", "position": "Programmer", "startDate": "1842", "current": true, "achievements": ["Wrote note G"]}],
		"education": [{"institution": "Home", "degree": "Private tuition", "field": "Mathematics", "graduationDate": "1835"}],
		"skills": [{"category": "Math", "skills": ["Calculus"]}],
		"projects": [],
		"certifications": [{"name": "Cert", "issuer": "Org", "date": "2020", "credentialId": "X1"}],
		"languages": [{"language": "French", "proficiency": "Fluent"}]
	}`

	var data ResumeData
	require.NoError(t, json.Unmarshal([]byte(raw), &data))

	assert.Equal(t, "Ada Lovelace", data.PersonalInfo.FullName)
	assert.Equal(t, "in/ada", data.PersonalInfo.LinkedIn)
	require.Len(t, data.Experience, 1)
	assert.True(t, data.Experience[0].Current)
	assert.Equal(t, "X1", data.Certifications[0].CredentialID)
	assert.Equal(t, "Fluent", data.Languages[0].Proficiency)
	assert.True(t, data.Skills[0].HasSkills())
}
