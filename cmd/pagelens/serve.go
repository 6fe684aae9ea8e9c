package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/short-int-ali/PageLens/internal/config"
	"github.com/short-int-ali/PageLens/internal/log"
	"github.com/short-int-ali/PageLens/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis pipeline as an HTTP service",
		Long: `Serve exposes the analyzer over HTTP.

Endpoints:
  POST /api/analyze  {"url": "https://example.com"} -> analysis report
  GET  /healthz      liveness probe

Examples:
  # Listen on the default address
  pagelens serve

  # Custom address and a static renderer
  pagelens serve --addr :9090 --renderer static`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultListenAddr,
		"Listen address")
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
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pagelens in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := buildConfig(cmd, nil)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr, _ = cmd.Flags().GetString("addr")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// The service logs JSON for aggregation; the CLI keeps text.
	logger := log.NewJSONLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	renderer := newRenderer(cfg, logger)
	defer func() {
		if err := renderer.Close(); err != nil {
			logger.Error("renderer shutdown failed", "error", err)
		}
	}()

	srv := server.New(
		newPipelineFactory(cfg, renderer, logger),
		server.WithAddr(cfg.ListenAddr),
		server.WithServerLogger(logger),
	)
	return srv.ListenAndServe(ctx)
}
