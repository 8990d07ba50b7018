package validation

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-pdf/internal/types"
)

// Messages reported by ValidateResume, in reporting order.
const (
	MsgFullNameRequired   = "Full name is required"
	MsgEmailRequired      = "Email is required"
	MsgExperienceRequired = "At least one work experience is required"
	MsgEducationRequired  = "At least one education entry is required"
	MsgSkillsRequired     = "At least one skill category with skills is required"
)

// requiredFields is the subset of a resume the gate looks at. Field order
// fixes the order of reported messages.
type requiredFields struct {
	FullName   string                `validate:"required"`
	Email      string                `validate:"required"`
	Experience []types.Experience    `validate:"min=1"`
	Education  []types.Education     `validate:"min=1"`
	Skills     []types.SkillCategory `validate:"has_skills"`
}

var fieldMessages = map[string]string{
	"FullName":   MsgFullNameRequired,
	"Email":      MsgEmailRequired,
	"Experience": MsgExperienceRequired,
	"Education":  MsgEducationRequired,
	"Skills":     MsgSkillsRequired,
}

var (
	gateOnce sync.Once
	gate     *validator.Validate
)

func resumeValidator() *validator.Validate {
	gateOnce.Do(func() {
		gate = validator.New()
		_ = gate.RegisterValidation("has_skills", hasSkills)
	})
	return gate
}

// hasSkills passes when at least one category lists a skill.
func hasSkills(fl validator.FieldLevel) bool {
	categories, ok := fl.Field().Interface().([]types.SkillCategory)
	if !ok {
		return false
	}
	for _, category := range categories {
		if category.HasSkills() {
			return true
		}
	}
	return false
}

// ValidateResume runs the pre-flight gate. Every failed rule is reported,
// never just the first. The result is advisory: rendering does not call it.
func ValidateResume(data *types.ResumeData) types.ValidationResult {
	if data == nil {
		data = &types.ResumeData{}
	}

	fields := requiredFields{
		FullName:   strings.TrimSpace(data.PersonalInfo.FullName),
		Email:      strings.TrimSpace(data.PersonalInfo.Email),
		Experience: data.Experience,
		Education:  data.Education,
		Skills:     data.Skills,
	}

	result := types.ValidationResult{Valid: true, Errors: []string{}}
	err := resumeValidator().Struct(fields)
	if err == nil {
		return result
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return types.ValidationResult{Valid: false, Errors: []string{err.Error()}}
	}
	result.Valid = false
	for _, fe := range verrs {
		if msg, ok := fieldMessages[fe.StructField()]; ok {
			result.Errors = append(result.Errors, msg)
		}
	}
	return result
}
