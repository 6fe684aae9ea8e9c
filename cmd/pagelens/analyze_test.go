package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/short-int-ali/PageLens/internal/config"
)

// TestBuildConfig tests flag overlay over defaults.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults when no flags changed", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		cfg, opts, err := buildConfig(cmd, []string{"https://example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.MaxDepth != config.DefaultMaxDepth {
			t.Errorf("expected default depth %d, got %d", config.DefaultMaxDepth, cfg.MaxDepth)
		}
		if cfg.MaxPages != config.DefaultMaxPages {
			t.Errorf("expected default max pages %d, got %d", config.DefaultMaxPages, cfg.MaxPages)
		}
		if len(opts.targets) != 1 || opts.targets[0] != "https://example.com" {
			t.Errorf("unexpected targets: %v", opts.targets)
		}
		if opts.jsonReport || opts.markdownReport {
			t.Error("report format flags should default to false")
		}
	})

	t.Run("changed flags override defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		for flag, value := range map[string]string{
			"depth":     "4",
			"max-pages": "40",
			"timeout":   "5s",
			"renderer":  "static",
			"json":      "true",
		} {
			if err := cmd.Flags().Set(flag, value); err != nil {
				t.Fatalf("failed to set flag %s: %v", flag, err)
			}
		}

		cfg, opts, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.MaxDepth != 4 {
			t.Errorf("expected depth 4, got %d", cfg.MaxDepth)
		}
		if cfg.MaxPages != 40 {
			t.Errorf("expected max pages 40, got %d", cfg.MaxPages)
		}
		if cfg.FetchTimeout != 5*time.Second {
			t.Errorf("expected timeout 5s, got %v", cfg.FetchTimeout)
		}
		if cfg.Renderer != config.RendererStatic {
			t.Errorf("expected static renderer, got %q", cfg.Renderer)
		}
		if !opts.jsonReport {
			t.Error("expected jsonReport to be set")
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "nope.yml")); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		_, _, err := buildConfig(cmd, nil)
		if err == nil {
			t.Fatal("expected error for missing config file")
		}
		if !strings.Contains(err.Error(), "configuration file not found") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("config file values form the base", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".pagelens")
		content := "max_depth: 5\nmax_pages: 50\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cmd := NewAnalyzeCmd()
		if err := cmd.Flags().Set("config", path); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}
		if err := cmd.Flags().Set("max-pages", "20"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		cfg, _, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.MaxDepth != 5 {
			t.Errorf("expected depth 5 from file, got %d", cfg.MaxDepth)
		}
		if cfg.MaxPages != 20 {
			t.Errorf("expected max pages 20 from flag override, got %d", cfg.MaxPages)
		}
	})
}

// TestRunAnalyzeCmdValidation tests argument and flag validation.
func TestRunAnalyzeCmdValidation(t *testing.T) {
	t.Parallel()

	t.Run("no targets", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		err := runAnalyzeCmd(cmd, nil)
		if err == nil {
			t.Fatal("expected error for missing targets")
		}
		if !strings.Contains(err.Error(), "no targets provided") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("json and markdown are mutually exclusive", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.Flags().Set("json", "true"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}
		if err := cmd.Flags().Set("markdown", "true"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		err := runAnalyzeCmd(cmd, []string{"https://example.com"})
		if err == nil {
			t.Fatal("expected error for conflicting format flags")
		}
		if !strings.Contains(err.Error(), "mutually exclusive") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Parallel()

		cmd := NewAnalyzeCmd()
		if err := cmd.Flags().Set("depth", "-1"); err != nil {
			t.Fatalf("failed to set flag: %v", err)
		}

		err := runAnalyzeCmd(cmd, []string{"https://example.com"})
		if err == nil {
			t.Fatal("expected error for negative depth")
		}
		if !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestOpenOutput tests report destination handling.
func TestOpenOutput(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses stdout", func(t *testing.T) {
		t.Parallel()

		out, closeOut, err := openOutput("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer closeOut()

		if out != os.Stdout {
			t.Error("expected stdout for empty path")
		}
	})

	t.Run("creates missing directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "reports", "out.json")
		out, closeOut, err := openOutput(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out == nil {
			t.Fatal("expected a writer")
		}
		closeOut()

		if _, err := os.Stat(path); err != nil {
			t.Errorf("output file not created: %v", err)
		}
	})
}
