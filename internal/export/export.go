// Package export snapshots the rendered portfolio to PDF in headless Chrome.
package export

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/mtmuztaba/portfolio/internal/view"
)

// DefaultTimeout bounds a whole export run.
const DefaultTimeout = 45 * time.Second

// Exporter prints pages of a running site.
type Exporter struct {
	// ChromePath overrides browser detection.
	ChromePath string
	Timeout    time.Duration
}

// New returns an exporter using the detected browser.
func New() *Exporter {
	return &Exporter{ChromePath: detectChromePath(), Timeout: DefaultTimeout}
}

// detectChromePath checks CHROME_PATH, then the usual install locations.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// PageURL is the print rendering of v on the site at baseURL.
func PageURL(baseURL string, v view.View) (string, error) {
	if !v.Valid() {
		return "", fmt.Errorf("unknown view %q", v)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid base URL %q: want http or https", baseURL)
	}
	u.Path = "/"
	u.RawQuery = url.Values{"view": {string(v)}, "print": {"1"}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}

// PDF renders view v of the site at baseURL with every gallery expanded.
func (e *Exporter) PDF(ctx context.Context, baseURL string, v view.View) ([]byte, error) {
	target, err := PageURL(baseURL, v)
	if err != nil {
		return nil, err
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.ChromePath))
	} else {
		log.Println("Chrome path not found, letting chromedp detect it")
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.EmulateViewport(1280, 900),
		chromedp.Navigate(target),
		chromedp.WaitReady("footer"),
		// images are lazy; give them a moment after layout
		chromedp.Sleep(time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("Exported %s view: %d bytes", v, len(pdf))
	return pdf, nil
}
