package config

import "time"

// Default configuration values.
// The crawl ceilings are deliberately small: PageLens samples a site to
// characterize it, it does not mirror it.
const (
	// DefaultMaxDepth limits BFS recursion from the start URL.
	// Depth 0 is the homepage, 1 its direct links, 2 one hop further.
	// Two hops reach the functional surface (login, pricing, contact)
	// of almost any marketing site.
	DefaultMaxDepth = 2

	// DefaultMaxPages is the hard ceiling on snapshots per run.
	// 15 pages keeps a run under a minute with a headless browser while
	// still covering a typical site's primary navigation.
	DefaultMaxPages = 15

	// DefaultFetchTimeout is the per-page render timeout. Rendering
	// includes script execution, so this is generous compared to a plain
	// HTTP fetch. The timeout applies per page, never to the whole run.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultQueueFactor bounds queued+fetched work to this multiple of
	// MaxPages, capping memory on link-dense sites.
	DefaultQueueFactor = 2

	// DefaultEvidencePreview is how many signals are retained per page in
	// aggregated report evidence. Keeps report size predictable.
	DefaultEvidencePreview = 3

	// DefaultUserAgent identifies PageLens in HTTP requests so operators
	// can recognize analyzer traffic in their logs.
	DefaultUserAgent = "PageLens/1.0 (+https://github.com/short-int-ali/PageLens)"

	// DefaultListenAddr is the HTTP boundary's listen address.
	DefaultListenAddr = ":8080"

	// DefaultBatchSize is the number of concurrent analyses when multiple
	// start URLs are given. Each analysis owns a browser session, so this
	// is kept low.
	DefaultBatchSize = 3

	// AppName is the application name used for XDG directory paths.
	AppName = "pagelens"
)

// RendererKind selects how pages are fetched and extracted.
type RendererKind string

const (
	// RendererBrowser renders pages in headless Chrome. This is the
	// default: it sees what a visitor's browser sees, scripts included.
	RendererBrowser RendererKind = "browser"

	// RendererStatic fetches raw HTML over HTTP without executing
	// scripts. Faster and Chrome-free, but blind to client-rendered
	// content.
	RendererStatic RendererKind = "static"
)

// Config holds all options for an analysis run.
// It is populated from CLI flags or the optional config file and passed
// through the application by value; there is no global configuration state.
//
// Design decision: We use a single flat struct rather than nested
// sub-configs. The option count is manageable, and flat fields map
// one-to-one onto CLI flags and YAML keys.
type Config struct {
	// MaxDepth is the maximum BFS depth. Depth 0 means homepage only.
	MaxDepth int `yaml:"max_depth"`

	// MaxPages is the hard ceiling on snapshots produced per run.
	MaxPages int `yaml:"max_pages"`

	// FetchTimeout is the per-page fetch/render timeout.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// QueueFactor bounds total queued+fetched work at QueueFactor*MaxPages.
	QueueFactor int `yaml:"queue_factor"`

	// EvidencePreview is the per-page evidence cap in aggregated features.
	EvidencePreview int `yaml:"evidence_preview"`

	// Renderer selects the page fetch strategy.
	Renderer RendererKind `yaml:"renderer"`

	// RespectRobots enables robots.txt politeness. Off by default: a
	// bounded 15-page sample is closer to a browser visit than a bulk
	// crawl, but operators who want strict politeness can turn it on.
	RespectRobots bool `yaml:"respect_robots"`

	// UserAgent is sent with every fetch.
	UserAgent string `yaml:"user_agent"`

	// ListenAddr is the HTTP boundary's listen address (serve command).
	ListenAddr string `yaml:"listen_addr"`

	// BatchSize is the concurrency limit when analyzing multiple URLs.
	BatchSize int `yaml:"batch_size"`

	// Verbose enables slog.LevelDebug output.
	Verbose bool `yaml:"verbose"`
}

// Default returns a Config populated with the default values.
func Default() Config {
	return Config{
		MaxDepth:        DefaultMaxDepth,
		MaxPages:        DefaultMaxPages,
		FetchTimeout:    DefaultFetchTimeout,
		QueueFactor:     DefaultQueueFactor,
		EvidencePreview: DefaultEvidencePreview,
		Renderer:        RendererBrowser,
		UserAgent:       DefaultUserAgent,
		ListenAddr:      DefaultListenAddr,
		BatchSize:       DefaultBatchSize,
	}
}

// Validate checks the configuration for invalid values.
// It returns one of the package sentinel errors so callers can use
// errors.Is for programmatic handling.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return ErrInvalidMaxDepth
	}
	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}
	if c.FetchTimeout <= 0 {
		return ErrInvalidFetchTimeout
	}
	if c.QueueFactor < 1 {
		return ErrInvalidQueueFactor
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	switch c.Renderer {
	case RendererBrowser, RendererStatic:
	default:
		return ErrInvalidRenderer
	}
	return nil
}
