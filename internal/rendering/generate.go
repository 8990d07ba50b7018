package rendering

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/resume-pdf/internal/types"
)

// Document is a finished, fully serialized render.
type Document struct {
	Template    string
	ColorScheme string
	Font        string
	Pages       int

	data []byte
	runs []TextRun
}

// Bytes returns the PDF content.
func (d *Document) Bytes() []byte {
	return d.data
}

// Runs returns every line of text placed in the document, in write order.
func (d *Document) Runs() []TextRun {
	return d.runs
}

// Lines returns the text of every run, in write order.
func (d *Document) Lines() []string {
	lines := make([]string, len(d.runs))
	for i, run := range d.runs {
		lines[i] = run.Text
	}
	return lines
}

// WriteTo writes the PDF content to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.data)
	return int64(n), err
}

// Opener presents a rendered PDF file to the user.
type Opener interface {
	Open(ctx context.Context, path string) error
}

// ApplyDefaults fills zero-valued options with the documented defaults.
func ApplyDefaults(opts types.Options) types.Options {
	if strings.TrimSpace(opts.Template) == "" {
		opts.Template = DefaultTemplate
	}
	if opts.FontSize == 0 {
		opts.FontSize = DefaultFontSize
	}
	if opts.LineHeight == 0 {
		opts.LineHeight = DefaultLineHeight
	}
	if opts.Margin == 0 {
		opts.Margin = DefaultMargin
	}
	if strings.TrimSpace(opts.Font) == "" {
		opts.Font = DefaultFont
	}
	return opts
}

// Generate renders data with opts into a new document. Each call builds its
// own canvas, so concurrent calls are independent. It never re-validates the
// resume; callers run the validation gate first. Either a complete document
// or an error is returned.
func Generate(data *types.ResumeData, opts types.Options) (doc *Document, err error) {
	if data == nil {
		return nil, &RenderError{Message: "resume data is nil"}
	}
	if err := opts.Validate(); err != nil {
		return nil, &OptionsError{Message: "invalid render options", Cause: err}
	}

	opts = ApplyDefaults(opts)
	tpl := LookupTemplate(opts.Template)
	st := newStyle(tpl, opts)

	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = &RenderError{Template: tpl.Name, Message: "layout failed", Cause: fmt.Errorf("%v", r)}
		}
	}()

	c := NewCanvas(opts.Margin)
	c.SetMetadata(documentTitle(data), strings.TrimSpace(data.PersonalInfo.FullName))
	compose(c, data, tpl, st)

	content, err := c.output()
	if err != nil {
		return nil, &RenderError{Template: tpl.Name, Message: "failed to serialize PDF", Cause: err}
	}

	return &Document{
		Template:    tpl.Name,
		ColorScheme: schemeName(tpl, opts.ColorScheme),
		Font:        st.family,
		Pages:       c.PageCount(),
		data:        content,
		runs:        c.Runs(),
	}, nil
}

// Download renders the resume and saves it into dir under FileName(data).
// It returns the written path.
func Download(data *types.ResumeData, opts types.Options, dir string) (string, error) {
	doc, err := Generate(data, opts)
	if err != nil {
		return "", err
	}

	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	path := filepath.Join(dir, FileName(data))
	if err := os.WriteFile(path, doc.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	return path, nil
}

// Preview renders the resume to a temporary file and hands it to opener.
// Opener failures (no browser, blocked window) are returned, never retried.
// The temporary file is removed once opener returns.
func Preview(ctx context.Context, data *types.ResumeData, opts types.Options, opener Opener) error {
	doc, err := Generate(data, opts)
	if err != nil {
		return err
	}

	f, err := os.CreateTemp("", "resume-preview-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	path := f.Name()
	defer func() { _ = os.Remove(path) }()

	if _, err := doc.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write preview file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close preview file: %w", err)
	}

	if err := opener.Open(ctx, path); err != nil {
		return fmt.Errorf("failed to open preview: %w", err)
	}
	return nil
}

var fileNameUnsafe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// FileName builds the download name, e.g. "Jane_Doe_Resume.pdf".
func FileName(data *types.ResumeData) string {
	if data == nil {
		return "Resume.pdf"
	}
	name := strings.Trim(fileNameUnsafe.ReplaceAllString(data.PersonalInfo.FullName, "_"), "_")
	if name == "" {
		return "Resume.pdf"
	}
	return name + "_Resume.pdf"
}

func documentTitle(data *types.ResumeData) string {
	name := strings.TrimSpace(data.PersonalInfo.FullName)
	if name == "" {
		return "Resume"
	}
	return name + " - Resume"
}
