package render

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/stealth"
)

// Browser renders pages in headless Chrome via Rod. The browser process
// is launched lazily on the first Fetch and lives for the renderer's
// lifetime; each page gets its own tab, closed before Fetch returns.
//
// Design decision: One tab at a time, sequentially, matching the
// traversal's BFS ordering. A tab pool would speed up large crawls but
// the page ceiling is 15; browser startup dominates either way.
type Browser struct {
	// remoteURL is the WebSocket URL of an external Chrome instance.
	// Empty means launch a local one via the Rod launcher.
	remoteURL string

	// userAgent overrides the tab's User-Agent when non-empty.
	userAgent string

	logger *slog.Logger

	mu      sync.Mutex
	browser *rod.Browser
	lnch    *launcher.Launcher
	closed  bool
}

// BrowserOption configures a Browser renderer.
type BrowserOption func(*Browser)

// WithRemoteBrowser connects to an already-running Chrome at the given
// WebSocket URL instead of launching one.
func WithRemoteBrowser(wsURL string) BrowserOption {
	return func(b *Browser) {
		b.remoteURL = wsURL
	}
}

// WithBrowserUserAgent sets the User-Agent for rendered pages.
func WithBrowserUserAgent(ua string) BrowserOption {
	return func(b *Browser) {
		b.userAgent = ua
	}
}

// WithBrowserLogger sets a custom logger.
func WithBrowserLogger(logger *slog.Logger) BrowserOption {
	return func(b *Browser) {
		b.logger = logger
	}
}

// NewBrowser creates a headless-Chrome renderer. Chrome is not started
// until the first Fetch.
func NewBrowser(opts ...BrowserOption) *Browser {
	b := &Browser{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// connect launches or attaches to Chrome. Callers hold b.mu.
func (b *Browser) connect() (*rod.Browser, error) {
	if b.closed {
		return nil, fmt.Errorf("render: browser renderer is closed")
	}
	if b.browser != nil {
		return b.browser, nil
	}

	wsURL := b.remoteURL
	if wsURL == "" {
		l := launcher.New().Headless(true)
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("render: launch chrome: %w", err)
		}
		b.lnch = l
		wsURL = u
	}

	browser := rod.New().ControlURL(wsURL)
	if err := browser.Connect(); err != nil {
		if b.lnch != nil {
			b.lnch.Cleanup()
			b.lnch = nil
		}
		return nil, fmt.Errorf("render: connect chrome: %w", err)
	}

	b.browser = browser
	b.logger.Debug("browser renderer connected", "remote", b.remoteURL != "")
	return browser, nil
}

// Fetch renders the page in a fresh stealth tab and extracts its evidence.
// The tab is always closed before returning.
func (b *Browser) Fetch(ctx context.Context, pageURL string, timeout time.Duration) (*PageExtraction, error) {
	b.mu.Lock()
	browser, err := b.connect()
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page, err := stealth.Page(browser)
	if err != nil {
		return nil, fmt.Errorf("render: create tab: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(pageURL); err != nil {
		return nil, fmt.Errorf("render: navigate %s: %w", pageURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		// A load timeout is not fatal: whatever rendered so far is
		// still evidence.
		b.logger.Warn("wait load timed out", "url", pageURL, "error", err)
	}

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("render: page info %s: %w", pageURL, err)
	}

	htmlContent, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("render: read DOM %s: %w", pageURL, err)
	}

	return ExtractHTML(info.URL, htmlContent)
}

// Close shuts down Chrome and releases the launcher's resources.
// Safe to call whether or not a Fetch ever succeeded.
func (b *Browser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	if b.lnch != nil {
		b.lnch.Cleanup()
		b.lnch = nil
	}
	return err
}
