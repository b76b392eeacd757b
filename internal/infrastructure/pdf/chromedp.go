package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const defaultChromeTimeout = 30 * time.Second

// A4 paper in inches
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
	marginInches   = 0.5
)

// ChromedpConfig configures the Chrome-based renderer
type ChromedpConfig struct {
	// Timeout bounds a single render
	Timeout time.Duration
	// RemoteURL points at an existing Chrome instance; empty launches one
	RemoteURL string
	// NoSandbox is required when Chrome runs as root in a container
	NoSandbox bool
	Logger    *zap.Logger
}

// ChromedpRenderer renders invoices by printing the HTML layout
// through the Chrome DevTools Protocol
type ChromedpRenderer struct {
	config      *ChromedpConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpRenderer creates a renderer with a shared Chrome allocator
func NewChromedpRenderer(config *ChromedpConfig) *ChromedpRenderer {
	if config == nil {
		config = &ChromedpConfig{}
	}
	if config.Timeout == 0 {
		config.Timeout = defaultChromeTimeout
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &ChromedpRenderer{config: config, logger: logger}
	r.initAllocator()
	return r
}

func (r *ChromedpRenderer) initAllocator() {
	if r.config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), r.config.RemoteURL)
		return
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
}

// Render prints the invoice document to an A4 PDF
func (r *ChromedpRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "document is nil", nil)
	}

	html, err := renderHTML(doc)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	var pdfData []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithMarginTop(marginInches).
				WithMarginRight(marginInches).
				WithMarginBottom(marginInches).
				WithMarginLeft(marginInches).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)

	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewRenderError(ErrCodeRenderTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", r.config.Timeout), err)
		}
		r.logger.Error("chromedp rendering failed", zap.Error(err))
		return nil, NewRenderError(ErrCodeRenderFailed, "chromedp execution failed", err)
	}

	if len(pdfData) == 0 {
		return nil, NewRenderError(ErrCodeRenderFailed, "generated PDF is empty", nil)
	}

	r.logger.Debug("PDF rendered",
		zap.String("invoice_number", doc.Number),
		zap.Int("bytes", len(pdfData)),
		zap.Duration("duration", time.Since(startTime)))

	return pdfData, nil
}

// Close shuts down the Chrome allocator
func (r *ChromedpRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

// Ensure ChromedpRenderer implements Renderer
var _ Renderer = (*ChromedpRenderer)(nil)
