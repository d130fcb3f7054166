// Package render converts generated HTML documents to PDF bytes. The only
// implementation drives a headless Chrome via chromedp and requires a
// Chrome/Chromium binary on the host; callers that cannot rely on one should
// inject their own Renderer.
package render

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single print-to-PDF round trip
const DefaultTimeout = 30 * time.Second

// Renderer turns an HTML document into PDF bytes
type Renderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeRenderer renders PDFs with a headless Chrome instance
type ChromeRenderer struct {
	Timeout time.Duration
	Verbose bool
}

// NewChromeRenderer returns a renderer with the default timeout
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{Timeout: DefaultTimeout}
}

// RenderPDF loads the HTML in a headless browser via a data: URL and prints
// it to PDF. A fresh browser context is used per call; rendering a resume is
// infrequent enough that startup cost does not matter.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	if r.Verbose {
		log.Printf("[RENDER] Printing %d bytes of HTML to PDF", len(html))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	dataURL := "data:text/html," + url.PathEscape(html)

	var pdfBytes []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBytes, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "browser pdf rendering failed", Cause: err}
	}

	if r.Verbose {
		log.Printf("[RENDER] Produced PDF: %d bytes", len(pdfBytes))
	}
	return pdfBytes, nil
}
