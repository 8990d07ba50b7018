// Package preview opens rendered resumes in a local Chrome/Chromium window.
package preview

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds how long a preview window is kept open.
const DefaultTimeout = 5 * time.Minute

// Error represents a failed preview
type Error struct {
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("preview error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("preview error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// BrowserOpener shows a PDF in a browser driven by chromedp. Open blocks
// until ctx is cancelled or Timeout elapses, so the caller may delete the
// file as soon as it returns.
type BrowserOpener struct {
	// ExecPath overrides browser discovery when non-empty.
	ExecPath string
	Timeout  time.Duration
	Headless bool
	Verbose  bool
}

// NewBrowserOpener creates a windowed opener with DefaultTimeout.
func NewBrowserOpener(execPath string, timeout time.Duration, verbose bool) *BrowserOpener {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &BrowserOpener{ExecPath: execPath, Timeout: timeout, Verbose: verbose}
}

// Open navigates a new browser window to the file at path.
func (o *BrowserOpener) Open(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return &Error{Path: path, Message: "failed to resolve path", Cause: err}
	}
	if _, err := os.Stat(abs); err != nil {
		return &Error{Path: abs, Message: "file not accessible", Cause: err}
	}
	target := FileURL(abs)

	if o.Verbose {
		log.Printf("[preview] Opening %s", target)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", o.Headless),
		chromedp.Flag("disable-gpu", o.Headless),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if o.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	if err := chromedp.Run(browserCtx, chromedp.Navigate(target)); err != nil {
		return &Error{Path: abs, Message: "browser navigation failed", Cause: err}
	}

	// Keep the window alive until the user is done or the caller gives up.
	<-browserCtx.Done()

	if o.Verbose {
		log.Printf("[preview] Closed %s", target)
	}
	return nil
}

// FileURL converts an absolute filesystem path to a file:// URL.
func FileURL(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}
