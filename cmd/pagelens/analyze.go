package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/short-int-ali/PageLens/internal/claims"
	"github.com/short-int-ali/PageLens/internal/classify"
	"github.com/short-int-ali/PageLens/internal/compare"
	"github.com/short-int-ali/PageLens/internal/config"
	"github.com/short-int-ali/PageLens/internal/crawler"
	"github.com/short-int-ali/PageLens/internal/log"
	"github.com/short-int-ali/PageLens/internal/model"
	"github.com/short-int-ali/PageLens/internal/pipeline"
	"github.com/short-int-ali/PageLens/internal/render"
	"github.com/short-int-ali/PageLens/internal/report"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [url]...",
		Short: "Analyze a website's claimed vs detected features",
		Long: `Analyze crawls a website breadth-first from the given URL, classifies
each page against a catalog of functional patterns, extracts the
homepage's feature claims, and reports the gaps between the two.

Examples:
  # Analyze a single site
  pagelens analyze https://example.com

  # Analyze several sites concurrently
  pagelens analyze https://one.example https://two.example

  # Deeper crawl with more pages
  pagelens analyze --depth 3 --max-pages 30 https://example.com

  # Skip headless Chrome and fetch raw HTML
  pagelens analyze --renderer static https://example.com

  # Machine-readable output
  pagelens analyze --json -o report.json https://example.com`,
		Args: cobra.ArbitraryArgs,
		RunE: runAnalyzeCmd,
	}

	// Crawl behavior flags
	cmd.Flags().IntP("depth", "d", config.DefaultMaxDepth,
		"Maximum crawl depth (0 = homepage only)")
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of pages to crawl")
	cmd.Flags().DurationP("timeout", "t", config.DefaultFetchTimeout,
		"Per-page fetch timeout")
	cmd.Flags().String("renderer", string(config.RendererBrowser),
		"Page renderer: browser (headless Chrome) or static (raw HTML)")
	cmd.Flags().Bool("robots", false,
		"Respect robots.txt deny rules")

	// Batch analysis flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent analyses when multiple URLs are given")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pagelens in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// analyzeOptions carries the report-format choices that live outside Config.
type analyzeOptions struct {
	jsonReport     bool
	markdownReport bool
	outputPath     string
	targets        []string
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, opts, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if opts.jsonReport && opts.markdownReport {
		return errors.New("--json and --markdown are mutually exclusive")
	}
	if len(opts.targets) == 0 {
		return errors.New("no targets provided (specify one or more URLs as arguments)")
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return runAnalyze(ctx, cfg, opts, logger)
}

// buildConfig creates a Config from cobra command flags and the optional
// config file. File values form the base; flags the user changed win.
func buildConfig(cmd *cobra.Command, args []string) (config.Config, *analyzeOptions, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg := config.Default()
	found := config.FindConfigFile(configPath)
	switch {
	case found != "":
		cfg, err = config.Load(found)
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("failed to load config file %s: %w", found, err)
		}
	case configPath != "":
		return config.Config{}, nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	if cmd.Flags().Changed("depth") {
		cfg.MaxDepth, _ = cmd.Flags().GetInt("depth")
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages, _ = cmd.Flags().GetInt("max-pages")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.FetchTimeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("renderer") {
		renderer, _ := cmd.Flags().GetString("renderer")
		cfg.Renderer = config.RendererKind(renderer)
	}
	if cmd.Flags().Changed("robots") {
		cfg.RespectRobots, _ = cmd.Flags().GetBool("robots")
	}
	if cmd.Flags().Changed("batch") {
		cfg.BatchSize, _ = cmd.Flags().GetInt("batch")
	}
	if getVerboseFlag(cmd) {
		cfg.Verbose = true
	}

	// Report flags exist only on the analyze command; serve shares the
	// rest of this builder.
	opts := &analyzeOptions{targets: args}
	if cmd.Flags().Lookup("json") != nil {
		opts.jsonReport, _ = cmd.Flags().GetBool("json")
		opts.markdownReport, _ = cmd.Flags().GetBool("markdown")
		opts.outputPath, _ = cmd.Flags().GetString("output")
	}

	return cfg, opts, nil
}

// runAnalyze executes the analysis for all targets.
func runAnalyze(ctx context.Context, cfg config.Config, opts *analyzeOptions, logger *slog.Logger) error {
	renderer := newRenderer(cfg, logger)
	defer func() {
		if err := renderer.Close(); err != nil {
			logger.Error("renderer shutdown failed", "error", err)
		}
	}()

	out, closeOut, err := openOutput(opts.outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	writer := newReportWriter(out, cfg, opts)
	factory := newPipelineFactory(cfg, renderer, logger)

	if len(opts.targets) > 1 {
		return runBatchAnalyze(ctx, cfg, opts.targets, factory, writer, logger)
	}

	report := model.NewAnalysisReport(opts.targets[0])
	report.Meta.Generator = "pagelens " + getVersion()

	runErr := factory().Execute(ctx, report)
	if _, err := writer.Write(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return runErr
}

// runBatchAnalyze analyzes several targets concurrently and writes their
// reports in input order.
func runBatchAnalyze(ctx context.Context, cfg config.Config, targets []string, factory func() *pipeline.Pipeline, writer report.Writer, logger *slog.Logger) error {
	bp := pipeline.NewBatchProcessor(factory,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	reports, err := bp.ProcessBatch(ctx, targets)
	if err != nil {
		return err
	}

	var failed int
	for _, r := range reports {
		r.Meta.Generator = "pagelens " + getVersion()
		if _, err := writer.Write(r); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d analyses failed", failed, len(targets))
	}
	return nil
}

// newRenderer builds the configured page renderer.
func newRenderer(cfg config.Config, logger *slog.Logger) render.Renderer {
	if cfg.Renderer == config.RendererStatic {
		return render.NewStatic(render.WithStaticUserAgent(cfg.UserAgent))
	}
	return render.NewBrowser(
		render.WithBrowserUserAgent(cfg.UserAgent),
		render.WithBrowserLogger(logger),
	)
}

// newPipelineFactory builds fresh analysis pipelines over a shared
// renderer. Each pipeline owns its spider, so traversal state never
// leaks between runs.
func newPipelineFactory(cfg config.Config, renderer render.Renderer, logger *slog.Logger) func() *pipeline.Pipeline {
	return func() *pipeline.Pipeline {
		spider := crawler.New(renderer,
			crawler.WithMaxDepth(cfg.MaxDepth),
			crawler.WithMaxPages(cfg.MaxPages),
			crawler.WithFetchTimeout(cfg.FetchTimeout),
			crawler.WithQueueFactor(cfg.QueueFactor),
			crawler.WithRespectRobots(cfg.RespectRobots),
			crawler.WithUserAgent(cfg.UserAgent),
			crawler.WithLogger(logger),
		)

		p := pipeline.New(pipeline.WithLogger(logger))
		p.AddSteps(
			pipeline.NewCrawlStep(spider, pipeline.WithCrawlLogger(logger)),
			pipeline.NewClassifyStep(classify.NewEngine(classify.WithEvidencePreview(cfg.EvidencePreview))),
			pipeline.NewClaimsStep(claims.NewExtractor()),
			pipeline.NewCompareStep(compare.NewEngine()),
			pipeline.NewReasoningStep(),
		)
		return p
	}
}

// newReportWriter selects the output format.
func newReportWriter(out io.Writer, cfg config.Config, opts *analyzeOptions) report.Writer {
	switch {
	case opts.jsonReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case opts.markdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose))
	}
}

// openOutput returns the report destination and a close function.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
