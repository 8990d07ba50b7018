package validation

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// CountPDFPages parses a PDF document and returns its page count.
func CountPDFPages(content []byte) (count int, err error) {
	defer recoverPDF(&err)

	reader, err := openPDF(content)
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}

// CountPDFPagesFile counts the pages of the PDF stored at path.
func CountPDFPagesFile(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, &FileReadError{Message: "failed to read PDF file", Cause: err}
	}
	return CountPDFPages(content)
}

// ExtractText returns the plain text of every page, in page order.
func ExtractText(content []byte) (out string, err error) {
	defer recoverPDF(&err)

	reader, err := openPDF(content)
	if err != nil {
		return "", err
	}

	text, err := reader.GetPlainText()
	if err != nil {
		return "", &PDFReadError{Message: "failed to extract text", Cause: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, text); err != nil {
		return "", &PDFReadError{Message: "failed to read extracted text", Cause: err}
	}
	return buf.String(), nil
}

func openPDF(content []byte) (*pdf.Reader, error) {
	if len(content) == 0 {
		return nil, &PDFReadError{Message: "document is empty"}
	}
	if !strings.HasPrefix(string(content[:min(len(content), 8)]), "%PDF-") {
		return nil, &PDFReadError{Message: "missing PDF header"}
	}
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, &PDFReadError{Message: "failed to parse PDF", Cause: err}
	}
	return reader, nil
}

// recoverPDF turns a parser panic on malformed input into a PDFReadError.
func recoverPDF(err *error) {
	if r := recover(); r != nil {
		*err = &PDFReadError{Message: "malformed PDF", Cause: fmt.Errorf("%v", r)}
	}
}
