package model

import "time"

// AnalysisReport is the full result of one analysis run. Its JSON shape is
// the wire contract returned by both the CLI and the HTTP boundary.
//
// Design decision: We use a single report struct with typed sections rather
// than separate payloads per stage because:
//  1. The pipeline accumulates into one place, stage by stage
//  2. Serialization is a single json.Marshal with no assembly step
//  3. Callers get the crawl, detection, and comparison views together
type AnalysisReport struct {
	// Meta describes the run itself.
	Meta Meta `json:"meta"`

	// Crawl summarizes the traversal: pages reached, soft errors,
	// and limitation notices.
	Crawl CrawlSummary `json:"crawl"`

	// Claims is what the homepage says the site offers.
	Claims HomepageClaims `json:"claims"`

	// Detection is what the crawled pages actually exhibit.
	Detection Detection `json:"detection"`

	// Comparison reconciles Claims against Detection.
	Comparison Comparison `json:"comparison"`

	// Reasoning explains the bounds within which the report should be read.
	Reasoning Reasoning `json:"reasoning"`

	// Snapshots holds the crawled page evidence for downstream pipeline
	// steps. Excluded from JSON: the report carries derived views, not
	// raw evidence.
	Snapshots []*PageSnapshot `json:"-"`

	// Err records a run-level failure for the boundary to translate.
	// Excluded from JSON; ErrorMessage carries the serializable form.
	Err error `json:"-"`

	// ErrorMessage is the string form of Err, if any.
	ErrorMessage string `json:"error,omitempty"`
}

// Meta describes one analysis run.
type Meta struct {
	// URL is the normalized start URL the run analyzed.
	URL string `json:"url"`

	// AnalyzedAt is when the run started.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// DurationMS is the total run duration in milliseconds.
	DurationMS int64 `json:"duration_ms"`

	// Generator identifies the tool version that produced the report.
	Generator string `json:"generator"`
}

// CrawlSummary reports traversal results and limits.
type CrawlSummary struct {
	// PagesCrawled is the number of snapshots produced.
	PagesCrawled int `json:"pages_crawled"`

	// Pages lists the crawled pages in BFS discovery order.
	Pages []CrawledPage `json:"pages"`

	// Errors lists per-URL soft failures. A page failure never aborts
	// the run.
	Errors []CrawlError `json:"errors,omitempty"`

	// UnvisitedQueued is how many discovered URLs were still queued when
	// the traversal halted at its ceilings. Advisory, not an error.
	UnvisitedQueued int `json:"unvisited_queued,omitempty"`

	// MaxDepth and MaxPages are the ceilings the traversal ran under.
	MaxDepth int `json:"max_depth"`
	MaxPages int `json:"max_pages"`
}

// CrawledPage is one page entry in the crawl summary.
type CrawledPage struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Depth int    `json:"depth"`
}

// CrawlError records a per-URL fetch failure.
type CrawlError struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// Detection holds per-page and aggregated classification results.
type Detection struct {
	// PageClassifications holds each page's matches with bounded
	// evidence previews.
	PageClassifications []PageClassification `json:"page_classifications"`

	// AggregatedFeatures folds matches across the crawl, sorted by
	// descending max confidence.
	AggregatedFeatures []AggregatedFeature `json:"aggregated_features"`
}

// Comparison is the reconciliation of claims against detections.
type Comparison struct {
	// Summary is a natural-language account of the gap analysis.
	Summary string `json:"summary"`

	// Findings lists discrepancies ordered by severity rank.
	Findings []Finding `json:"findings"`

	// Analysis carries the counts behind the summary.
	Analysis ComparisonAnalysis `json:"analysis"`
}

// ComparisonAnalysis carries the raw reconciliation counts.
type ComparisonAnalysis struct {
	// ClaimedCount is the number of claims extracted from the homepage.
	ClaimedCount int `json:"claimed_count"`

	// MatchedCount is the number of claims with a strong detection match.
	MatchedCount int `json:"matched_count"`

	// MissingCount is the number of claimed_not_detected findings.
	MissingCount int `json:"missing_count"`

	// WeakCount is the number of weak_detection findings.
	WeakCount int `json:"weak_count"`

	// UnclaimedCount is the number of detected_not_claimed findings.
	UnclaimedCount int `json:"unclaimed_count"`

	// MatchRate is MatchedCount/ClaimedCount, zero when nothing was claimed.
	MatchRate float64 `json:"match_rate"`
}

// Reasoning explains the report's interpretive bounds.
type Reasoning struct {
	// Limitations is a fixed explanatory list plus the configured crawl
	// limits interpolated into it.
	Limitations []string `json:"limitations"`
}

// NewAnalysisReport creates a report for the given start URL with the
// analysis clock started.
func NewAnalysisReport(url string) *AnalysisReport {
	return &AnalysisReport{
		Meta: Meta{
			URL:        url,
			AnalyzedAt: time.Now().UTC(),
		},
	}
}

// Homepage returns the first crawled snapshot, which BFS ordering
// guarantees is the start page, or nil if nothing was crawled.
func (r *AnalysisReport) Homepage() *PageSnapshot {
	if len(r.Snapshots) == 0 {
		return nil
	}
	return r.Snapshots[0]
}
