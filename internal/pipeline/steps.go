package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/short-int-ali/PageLens/internal/claims"
	"github.com/short-int-ali/PageLens/internal/classify"
	"github.com/short-int-ali/PageLens/internal/compare"
	"github.com/short-int-ali/PageLens/internal/crawler"
	"github.com/short-int-ali/PageLens/internal/model"
)

// CrawlStep performs the bounded traversal and fills the report with
// snapshots and the crawl summary.
//
// Design decision: Crawling is the only step allowed to fail the run.
// Later stages are pure derivations over snapshots, so once at least one
// snapshot exists they always produce a (possibly empty) result.
type CrawlStep struct {
	// spider performs the traversal.
	spider *crawler.Spider

	// logger for structured logging.
	logger *slog.Logger
}

// CrawlStepOption configures a CrawlStep.
type CrawlStepOption func(*CrawlStep)

// WithCrawlLogger sets a custom logger for the crawl step.
func WithCrawlLogger(logger *slog.Logger) CrawlStepOption {
	return func(s *CrawlStep) {
		s.logger = logger
	}
}

// NewCrawlStep creates the crawl step around a configured spider.
func NewCrawlStep(spider *crawler.Spider, opts ...CrawlStepOption) *CrawlStep {
	s := &CrawlStep{
		spider: spider,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *CrawlStep) Name() string {
	return "crawl"
}

// Do executes the traversal. A run producing zero snapshots fails with
// ErrNothingCrawled; per-page errors are recorded in the summary and do
// not fail the step.
func (s *CrawlStep) Do(ctx context.Context, report *model.AnalysisReport) error {
	result, err := s.spider.Crawl(ctx, report.Meta.URL)
	if err != nil {
		return err
	}

	report.Snapshots = result.Snapshots()
	report.Crawl = model.CrawlSummary{
		PagesCrawled:    len(result.Pages),
		Pages:           make([]model.CrawledPage, 0, len(result.Pages)),
		UnvisitedQueued: result.UnvisitedQueued,
		MaxDepth:        s.spider.MaxDepth(),
		MaxPages:        s.spider.MaxPages(),
	}
	for _, p := range result.Pages {
		report.Crawl.Pages = append(report.Crawl.Pages, model.CrawledPage{
			URL:   p.Snapshot.URL,
			Title: p.Snapshot.Title,
			Depth: p.Depth,
		})
	}
	report.Crawl.Errors = append(report.Crawl.Errors, result.Errors...)

	if len(report.Snapshots) == 0 {
		return fmt.Errorf("%w: %s", crawler.ErrNothingCrawled, report.Meta.URL)
	}

	s.logger.Info("crawl finished",
		"url", report.Meta.URL,
		"pages", len(report.Snapshots),
		"errors", len(result.Errors),
	)
	return nil
}

// ClassifyStep scores every snapshot against the pattern catalog.
type ClassifyStep struct {
	engine *classify.Engine
}

// NewClassifyStep creates the classification step.
func NewClassifyStep(engine *classify.Engine) *ClassifyStep {
	return &ClassifyStep{engine: engine}
}

// Name returns the step name.
func (s *ClassifyStep) Name() string {
	return "classify"
}

// Do classifies all snapshots into per-page matches and aggregated
// features.
func (s *ClassifyStep) Do(_ context.Context, report *model.AnalysisReport) error {
	pages, features := s.engine.ClassifyAll(report.Snapshots)
	report.Detection = model.Detection{
		PageClassifications: pages,
		AggregatedFeatures:  features,
	}
	return nil
}

// ClaimsStep extracts feature claims from the homepage snapshot.
type ClaimsStep struct {
	extractor *claims.Extractor
}

// NewClaimsStep creates the claim-extraction step.
func NewClaimsStep(extractor *claims.Extractor) *ClaimsStep {
	return &ClaimsStep{extractor: extractor}
}

// Name returns the step name.
func (s *ClaimsStep) Name() string {
	return "claims"
}

// Do extracts claims from the homepage. BFS ordering guarantees the
// first snapshot is the start page.
func (s *ClaimsStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.Claims = *s.extractor.Extract(report.Homepage())
	return nil
}

// CompareStep reconciles claims against detections into ranked findings.
type CompareStep struct {
	engine *compare.Engine
}

// NewCompareStep creates the comparison step.
func NewCompareStep(engine *compare.Engine) *CompareStep {
	return &CompareStep{engine: engine}
}

// Name returns the step name.
func (s *CompareStep) Name() string {
	return "compare"
}

// Do runs the reconciliation.
func (s *CompareStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.Comparison = s.engine.Compare(&report.Claims, report.Detection.AggregatedFeatures)
	return nil
}

// ReasoningStep records the fixed interpretive limitations of a report,
// with the run's crawl ceilings interpolated.
type ReasoningStep struct{}

// NewReasoningStep creates the reasoning step.
func NewReasoningStep() *ReasoningStep {
	return &ReasoningStep{}
}

// Name returns the step name.
func (s *ReasoningStep) Name() string {
	return "reasoning"
}

// Do fills the reasoning section from the crawl summary already present
// in the report.
func (s *ReasoningStep) Do(_ context.Context, report *model.AnalysisReport) error {
	report.Reasoning = model.Reasoning{
		Limitations: []string{
			fmt.Sprintf("Analysis covered at most %d pages within %d link levels of the start URL.", report.Crawl.MaxPages, report.Crawl.MaxDepth),
			"Detection relies on lexical and structural evidence; features revealed only by user interaction may be missed.",
			"Claims are read from homepage wording and may not list every feature the site offers.",
			"Confidence values are heuristic signal weights, not probabilities.",
		},
	}
	return nil
}
