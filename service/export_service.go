package service

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// PDFExporter prints a rendered catalog page to PDF
type PDFExporter interface {
	GeneratePDF(ctx context.Context, pagePath, query string) ([]byte, error)
}

// ExportService prints catalog pages through a headless Chrome
type ExportService struct {
	baseURL    string
	chromePath string
	timeout    time.Duration
	logger     *zap.Logger
}

var _ PDFExporter = (*ExportService)(nil)

// NewExportService creates a new ExportService. baseURL must reach this server.
func NewExportService(baseURL, chromePath string, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		chromePath: detectChromePath(chromePath),
		timeout:    30 * time.Second,
		logger:     logger,
	}
}

// detectChromePath returns the configured Chrome executable or the first common installation found
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
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

// PrintURL is the address Chrome loads to print a catalog page
func (s *ExportService) PrintURL(pagePath, query string) string {
	values := url.Values{"print": {"1"}}
	if q := strings.TrimSpace(query); q != "" {
		values.Set("q", q)
	}
	return s.baseURL + pagePath + "?" + values.Encode()
}

// GeneratePDF renders the catalog page at pagePath filtered by query and prints it on A4
func (s *ExportService) GeneratePDF(ctx context.Context, pagePath, query string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if s.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(s.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.PrintURL(pagePath, query)
	s.logger.Info("printing catalog page", zap.String("url", renderURL))

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for fonts and images to load
		chromedp.Evaluate(`
			(function() {
				return Promise.all([
					document.fonts.ready,
					Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
						return new Promise((resolve) => {
							if (img.complete) {
								resolve();
								return;
							}
							const timeout = setTimeout(() => resolve(), 5000);
							img.onload = () => { clearTimeout(timeout); resolve(); };
							img.onerror = () => { clearTimeout(timeout); resolve(); };
						});
					}))
				]);
			})();
		`, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
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

	return pdfBuf, nil
}
