package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the resume_pdf binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_pdf"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_pdf ./cmd/resume_pdf'", binaryPath)
	}

	return binaryPath
}

// fixturePath resolves a file under the repository testdata directory.
func fixturePath(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...)
}
