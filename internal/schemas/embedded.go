package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Embedded schema names.
const (
	ResumeSchema        = "resume.schema.json"
	RenderRequestSchema = "render_request.schema.json"
)

//go:embed resume.schema.json render_request.schema.json
var files embed.FS

var (
	compileOnce sync.Once
	compiled    map[string]*gojsonschema.Schema
	compileErr  error
)

// loadSchemas compiles every embedded schema once.
func loadSchemas() (map[string]*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[string]*gojsonschema.Schema, 2)
		for _, name := range []string{ResumeSchema, RenderRequestSchema} {
			content, err := files.ReadFile(name)
			if err != nil {
				compileErr = &SchemaLoadError{Path: name, Message: "embedded schema missing", Cause: err}
				return
			}
			schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
			if err != nil {
				compileErr = &SchemaLoadError{Path: name, Message: "failed to compile", Cause: err}
				return
			}
			compiled[name] = schema
		}
	})
	return compiled, compileErr
}

// Validate checks document against one of the embedded schemas.
func Validate(name string, document []byte) error {
	all, err := loadSchemas()
	if err != nil {
		return err
	}
	schema, ok := all[name]
	if !ok {
		return &SchemaLoadError{Path: name, Message: "unknown schema"}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	return resultError(result)
}

// ValidateResume checks a resume JSON document.
func ValidateResume(document []byte) error {
	return Validate(ResumeSchema, document)
}

// ValidateRenderRequest checks a {"resume": ..., "options": ...} request
// body, including the embedded resume.
func ValidateRenderRequest(document []byte) error {
	if err := Validate(RenderRequestSchema, document); err != nil {
		return err
	}

	var envelope struct {
		Resume json.RawMessage `json:"resume"`
	}
	if err := json.Unmarshal(document, &envelope); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}

	err := ValidateResume(envelope.Resume)
	if verr, ok := err.(*ValidationError); ok {
		for i := range verr.Errors {
			verr.Errors[i].Field = "resume." + verr.Errors[i].Field
		}
	}
	return err
}
