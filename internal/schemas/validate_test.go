package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string"},
    "pages": {"type": "integer"}
  }
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "resume", "pages": 1}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"pages": 1}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_InvalidJSON_WrongType(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "resume", "pages": "one"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "pages", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", testSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "resume"}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{ invalid`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationError_Messages(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{{Field: "name", Message: "name is required"}}}
	assert.Equal(t, []string{"name: name is required"}, err.Messages())
	assert.Contains(t, err.Error(), "1. name: name is required")
}
