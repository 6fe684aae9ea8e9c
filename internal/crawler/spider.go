package crawler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/short-int-ali/PageLens/internal/model"
	"github.com/short-int-ali/PageLens/internal/render"
)

// Traversal errors.
var (
	// ErrInvalidStartURL is returned before any fetch when the start URL
	// cannot be parsed into an absolute HTTP(S) URL.
	ErrInvalidStartURL = errors.New("invalid start URL")

	// ErrNothingCrawled indicates a run that produced zero snapshots.
	// This is a run-level failure, distinct from a normal small-site
	// result: it means not even the homepage could be fetched.
	ErrNothingCrawled = errors.New("no pages could be crawled")
)

// Spider performs the bounded, domain-scoped breadth-first traversal.
// It discovers pages by following same-origin links from the start URL,
// fetching each page through the renderer collaborator.
//
// Design decision: We hand-roll the traversal rather than using a crawling
// framework because the semantics are load-bearing: the visited set is
// check-and-inserted before fetch (a failed fetch permanently consumes its
// slot), ceilings are hard, and fetches go through a headless renderer
// rather than an HTTP transport a framework would own.
type Spider struct {
	// renderer fetches and extracts pages.
	renderer render.Renderer

	// maxDepth limits how deep to crawl from the start URL.
	// 0 means only the start page.
	maxDepth int

	// maxPages is the hard ceiling on snapshots produced.
	maxPages int

	// fetchTimeout applies to each page fetch independently.
	fetchTimeout time.Duration

	// queueFactor bounds queued+fetched work at queueFactor*maxPages,
	// capping memory on link-dense sites.
	queueFactor int

	// respectRobots enables robots.txt politeness.
	respectRobots bool

	// userAgent is used for the robots.txt group lookup and fetch.
	userAgent string

	// robotsClient fetches robots.txt when politeness is enabled.
	robotsClient *http.Client

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Spider.
type Option func(*Spider)

// WithMaxDepth sets the maximum crawl depth.
// 0 = only the start page, 1 = start page plus linked pages, etc.
func WithMaxDepth(depth int) Option {
	return func(s *Spider) {
		s.maxDepth = depth
	}
}

// WithMaxPages sets the maximum number of snapshots to produce.
func WithMaxPages(maxPages int) Option {
	return func(s *Spider) {
		s.maxPages = maxPages
	}
}

// WithFetchTimeout sets the per-page fetch timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Spider) {
		s.fetchTimeout = d
	}
}

// WithQueueFactor sets the work-queue bound multiplier.
func WithQueueFactor(factor int) Option {
	return func(s *Spider) {
		if factor >= 1 {
			s.queueFactor = factor
		}
	}
}

// WithRespectRobots enables robots.txt politeness. Disallowed paths are
// skipped like any other filtered URL, never recorded as errors.
func WithRespectRobots(respect bool) Option {
	return func(s *Spider) {
		s.respectRobots = respect
	}
}

// WithUserAgent sets the agent name used for robots.txt matching.
func WithUserAgent(ua string) Option {
	return func(s *Spider) {
		s.userAgent = ua
	}
}

// WithRobotsClient sets the HTTP client used to fetch robots.txt.
func WithRobotsClient(client *http.Client) Option {
	return func(s *Spider) {
		s.robotsClient = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Spider) {
		s.logger = logger
	}
}

// MaxDepth returns the configured depth ceiling.
func (s *Spider) MaxDepth() int {
	return s.maxDepth
}

// MaxPages returns the configured page ceiling.
func (s *Spider) MaxPages() int {
	return s.maxPages
}

// New creates a Spider that fetches through the given renderer.
//
// Design decision: The renderer is required, not constructed here,
// because renderer lifetime (browser session) belongs to the caller and
// tests drive the spider with scripted renderers.
func New(renderer render.Renderer, opts ...Option) *Spider {
	s := &Spider{
		renderer:     renderer,
		maxDepth:     2,
		maxPages:     15,
		fetchTimeout: 30 * time.Second,
		queueFactor:  2,
		userAgent:    "PageLens",
		robotsClient: &http.Client{Timeout: 10 * time.Second},
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CrawledPage pairs a snapshot with the BFS depth it was found at.
type CrawledPage struct {
	Snapshot *model.PageSnapshot
	Depth    int
}

// Result is the traversal output: snapshots in BFS discovery order,
// per-URL soft errors, and advisory limitation notices.
type Result struct {
	// Pages holds the snapshots in the order they were fetched.
	Pages []CrawledPage

	// Errors lists URLs whose fetch failed. Failures never abort the run.
	Errors []model.CrawlError

	// UnvisitedQueued is how many queued URLs were never visited because
	// the traversal halted at a ceiling. Advisory, not an error.
	UnvisitedQueued int
}

// Snapshots returns the crawled snapshots in discovery order.
func (r *Result) Snapshots() []*model.PageSnapshot {
	snaps := make([]*model.PageSnapshot, len(r.Pages))
	for i, p := range r.Pages {
		snaps[i] = p.Snapshot
	}
	return snaps
}

// queueItem is one unit of BFS work.
type queueItem struct {
	url   string
	depth int
}

// Crawl runs the traversal from startURL.
//
// The queue is seeded with {startURL, 0}. Each URL's visited slot is
// claimed before its fetch, so an in-flight or failed fetch can never be
// retried. The loop halts when the snapshot count reaches the page
// ceiling or the queue empties. A single page failure is recorded and
// skipped; only an unparsable start URL fails fast.
func (s *Spider) Crawl(ctx context.Context, startURL string) (*Result, error) {
	start, err := url.Parse(startURL)
	if err != nil || !start.IsAbs() || start.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStartURL, startURL)
	}
	if start.Scheme != "http" && start.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidStartURL, start.Scheme)
	}

	origin := start.Scheme + "://" + strings.ToLower(start.Host)

	var robots *robotsFilter
	if s.respectRobots {
		robots = s.fetchRobots(ctx, origin)
	}

	result := &Result{Pages: make([]CrawledPage, 0, s.maxPages)}
	visited := make(map[string]bool)
	queue := []queueItem{{url: start.String(), depth: 0}}
	totalWork := 1 // URLs ever enqueued, bounds memory on link-dense sites

	for len(queue) > 0 && len(result.Pages) < s.maxPages {
		select {
		case <-ctx.Done():
			result.UnvisitedQueued = s.countUnvisited(queue, visited)
			return result, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		norm := normalizeURL(item.url)
		if visited[norm] {
			continue
		}
		// Claimed before the fetch: a failed fetch consumes the slot.
		visited[norm] = true

		ex, err := s.renderer.Fetch(ctx, item.url, s.fetchTimeout)
		if err != nil {
			s.logger.Debug("page fetch failed", "url", item.url, "error", err)
			result.Errors = append(result.Errors, model.CrawlError{URL: item.url, Error: err.Error()})
			continue
		}

		// The redirect target occupies a slot too, so a later link to the
		// canonical URL is not fetched again.
		visited[normalizeURL(ex.FinalURL)] = true

		snap := model.NewPageSnapshot(ex.FinalURL, ex.Title, ex.VisibleText, ex.Inputs, ex.Buttons, ex.Links)
		result.Pages = append(result.Pages, CrawledPage{Snapshot: snap, Depth: item.depth})

		// The homepage may have redirected; from here on, that is the
		// origin the crawl is scoped to.
		if len(result.Pages) == 1 {
			if final, err := url.Parse(ex.FinalURL); err == nil && final.Host != "" {
				origin = final.Scheme + "://" + strings.ToLower(final.Host)
			}
		}

		if item.depth >= s.maxDepth {
			continue
		}
		for _, link := range ex.Links {
			if totalWork >= s.queueFactor*s.maxPages {
				break
			}
			if !s.shouldFollow(origin, link.Href, visited, robots) {
				continue
			}
			queue = append(queue, queueItem{url: link.Href, depth: item.depth + 1})
			totalWork++
		}
	}

	result.UnvisitedQueued = s.countUnvisited(queue, visited)
	return result, nil
}

// countUnvisited counts queued URLs that never got a visited slot.
// The same URL can be queued from several pages before either fetch, so
// the count dedupes on the normalized form.
func (s *Spider) countUnvisited(queue []queueItem, visited map[string]bool) int {
	seen := make(map[string]bool, len(queue))
	n := 0
	for _, item := range queue {
		norm := normalizeURL(item.url)
		if visited[norm] || seen[norm] {
			continue
		}
		seen[norm] = true
		n++
	}
	return n
}

// shouldFollow decides whether a discovered link joins the queue:
// same-origin, not skip-filtered, not already visited, robots-allowed.
func (s *Spider) shouldFollow(origin, href string, visited map[string]bool, robots *robotsFilter) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if shouldSkip(u) {
		return false
	}
	if u.Scheme+"://"+strings.ToLower(u.Host) != origin {
		return false
	}
	if visited[normalizeURL(href)] {
		return false
	}
	if robots != nil && !robots.allowed(u.Path) {
		return false
	}
	return true
}

// skipExtensions lists binary, media, style, and script resources that
// are never pages worth fetching.
var skipExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
	".webp": true, ".ico": true, ".bmp": true, ".avif": true,
	".css": true, ".js": true, ".mjs": true, ".map": true,
	".pdf": true, ".zip": true, ".gz": true, ".tar": true, ".rar": true, ".7z": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true, ".webm": true, ".wav": true, ".ogg": true,
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true, ".eot": true,
	".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
	".exe": true, ".dmg": true, ".apk": true,
}

// logoutPath matches logout-style paths. Following them could end a
// session the rendered site depends on, and they never carry evidence.
var logoutPath = regexp.MustCompile(`(?i)/(log[-_]?out|sign[-_]?out|exit)(/|$)`)

// shouldSkip reports whether a URL is filtered out before fetch.
// Skipped URLs are neither fetched nor recorded as errors.
func shouldSkip(u *url.URL) bool {
	switch u.Scheme {
	case "mailto", "tel", "javascript":
		return true
	}
	if u.Scheme == "" && u.Host == "" && u.Path == "" {
		return true // bare fragment anchor
	}

	path := strings.ToLower(u.Path)
	if i := strings.LastIndex(path, "."); i >= 0 {
		if skipExtensions[path[i:]] {
			return true
		}
	}
	return logoutPath.MatchString(path)
}

// normalizeURL reduces a URL to its deduplication key: lower-cased
// origin plus path, with the query, fragment, and any trailing slash
// stripped. Two URLs with the same key occupy the same crawl slot.
func normalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	path := strings.TrimSuffix(strings.ToLower(u.Path), "/")
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + path
}
