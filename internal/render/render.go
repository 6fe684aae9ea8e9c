package render

import (
	"context"
	"time"

	"github.com/short-int-ali/PageLens/internal/model"
)

// PageExtraction is the fixed-shape result a renderer returns for one page.
// It is the raw material for a model.PageSnapshot; the crawler is the only
// consumer and performs the conversion.
type PageExtraction struct {
	// FinalURL is the page URL after redirects.
	FinalURL string

	// Title is the document title.
	Title string

	// VisibleText is the user-visible text content.
	VisibleText string

	// Inputs are the page's form controls in document order.
	Inputs []model.Input

	// Buttons are submit controls and button-styled links in document order.
	Buttons []model.Button

	// Links are anchor targets with their visible text in document order.
	Links []model.Link
}

// Renderer fetches a page and extracts its evidence.
//
// Design decision: We put the renderer behind an interface because:
//  1. The traversal must not care whether pages come from headless Chrome
//     or a plain HTTP fetch
//  2. Tests drive the crawler with scripted link graphs, no network at all
//  3. Per-page resources are released inside Fetch, the session in Close
type Renderer interface {
	// Fetch retrieves pageURL and extracts its evidence within timeout.
	// Implementations must release all per-page resources before
	// returning, on success and on error alike.
	Fetch(ctx context.Context, pageURL string, timeout time.Duration) (*PageExtraction, error)

	// Close releases the renderer session. Safe to call after a failed
	// run; callers should defer it as soon as the renderer exists.
	Close() error
}
