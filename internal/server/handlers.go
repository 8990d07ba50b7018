package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/resume-pdf/internal/config"
	"github.com/jonathan/resume-pdf/internal/ingestion"
	"github.com/jonathan/resume-pdf/internal/rendering"
	"github.com/jonathan/resume-pdf/internal/schemas"
	"github.com/jonathan/resume-pdf/internal/types"
	"github.com/jonathan/resume-pdf/internal/validation"
)

// TemplatesResponse describes what a render request may ask for.
type TemplatesResponse struct {
	Templates    []string      `json:"templates"`
	ColorSchemes []string      `json:"colorSchemes"`
	Defaults     types.Options `json:"defaults"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, TemplatesResponse{
		Templates:    rendering.Templates(),
		ColorSchemes: rendering.ColorSchemes(),
		Defaults:     rendering.ApplyDefaults(s.cfg.Render.Options()),
	})
}

// handleValidate runs the pre-render checks on a resume document. An
// incomplete resume is a successful call with valid=false.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := schemaCheck(schemas.ValidateResume(body)); err != nil {
		s.writeError(w, r, err)
		return
	}

	var data types.ResumeData
	if err := json.Unmarshal(body, &data); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "malformed JSON"})
		return
	}
	normalized, err := ingestion.NormalizeResume(&data)
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "resume", Message: err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, validation.ValidateResume(normalized))
}

// handleRenderPDF renders {"resume": ..., "options": ...} and streams the
// PDF back. Request options override the configured render defaults.
func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	disposition, err := parseDisposition(r.URL.Query().Get("disposition"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := schemaCheck(schemas.ValidateRenderRequest(body)); err != nil {
		s.writeError(w, r, err)
		return
	}

	var req types.RenderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "malformed JSON"})
		return
	}
	data, err := ingestion.NormalizeResume(&req.Resume)
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "resume", Message: err.Error()})
		return
	}
	if result := validation.ValidateResume(data); !result.Valid {
		s.writeError(w, r, &ErrIncompleteResume{Errors: result.Errors})
		return
	}

	opts := config.MergeOptions(s.cfg.Render.Options(), req.Options)
	doc, err := rendering.Generate(data, opts)
	s.metrics.observeRender(rendering.LookupTemplate(opts.Template).Name, pageCount(doc), err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	checks := validation.CheckDocument(doc.Bytes(), s.cfg.Render.MaxPages)
	for _, v := range checks.Violations {
		w.Header().Add("X-Resume-Warning", v.Type+": "+v.Details)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`%s; filename="%s"`, disposition, rendering.FileName(data)))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Bytes())))
	w.Header().Set("X-Resume-Template", doc.Template)
	w.Header().Set("X-Resume-Pages", strconv.Itoa(doc.Pages))
	w.WriteHeader(http.StatusOK)

	if s.cfg.Verbose {
		log.Printf("[render] request_id=%s template=%s scheme=%s pages=%d bytes=%d warnings=%d",
			requestID(r.Context()), doc.Template, doc.ColorScheme, doc.Pages, len(doc.Bytes()), len(checks.Violations))
	}
	if _, err := doc.WriteTo(w); err != nil {
		log.Printf("[render] request_id=%s failed to write PDF: %v", requestID(r.Context()), err)
	}
}

// readBody reads the whole request body, bounded by server.max_body_bytes.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	limit := s.cfg.Server.MaxBodyBytes
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &ErrRequestTooLarge{Limit: limit}
		}
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, &ErrValidation{Field: "body", Message: "request body is empty"}
	}
	return body, nil
}

// schemaCheck passes schema violations and load failures through and turns
// anything else (unparseable input) into a client error.
func schemaCheck(err error) error {
	if err == nil {
		return nil
	}
	var (
		validationErr *schemas.ValidationError
		loadErr       *schemas.SchemaLoadError
	)
	if errors.As(err, &validationErr) || errors.As(err, &loadErr) {
		return err
	}
	return &ErrValidation{Field: "body", Message: "malformed JSON"}
}

func parseDisposition(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "attachment":
		return "attachment", nil
	case "inline":
		return "inline", nil
	default:
		return "", &ErrValidation{Field: "disposition", Message: "must be attachment or inline"}
	}
}

func pageCount(doc *rendering.Document) int {
	if doc == nil {
		return 0
	}
	return doc.Pages
}
