// Package pdf renders transport requests and manifests to PDF through a
// headless Chrome driven by chromedp.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctrack/internal/core/ports"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second

	// A4 in inches.
	paperWidth  = 8.27
	paperHeight = 11.69
	margin      = 0.4
)

type Config struct {
	// RemoteURL points at a running Chrome DevTools endpoint. Empty starts a
	// local headless browser.
	RemoteURL string
	Timeout   time.Duration
	NoSandbox bool
}

// Renderer implements ports.PaperworkRenderer.
type Renderer struct {
	timeout     time.Duration
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewRenderer(cfg Config, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	r := &Renderer{timeout: timeout, logger: logger}
	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return r
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

// Close shuts the browser allocator down.
func (r *Renderer) Close() {
	if r.allocCancel != nil {
		r.allocCancel()
	}
}

func (r *Renderer) RenderTransportRequest(ctx context.Context, sheet ports.TransportRequestSheet) ([]byte, error) {
	html, err := transportRequestHTML(sheet)
	if err != nil {
		return nil, err
	}
	return r.print(ctx, sheet.Number, html)
}

func (r *Renderer) RenderManifest(ctx context.Context, sheet ports.ManifestSheet) ([]byte, error) {
	html, err := manifestHTML(sheet)
	if err != nil {
		return nil, err
	}
	return r.print(ctx, sheet.Number, html)
}

func (r *Renderer) print(ctx context.Context, name string, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	// Tie the browser tab to the caller's deadline.
	stop := context.AfterFunc(ctx, browserCancel)
	defer stop()

	started := time.Now()
	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("render %s: timed out after %s: %w", name, r.timeout, err)
		}
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("render %s: empty pdf", name)
	}

	r.logger.Info("pdf rendered",
		zap.String("document", name),
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(started)))
	return pdf, nil
}
