package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefault tests that defaults are internally consistent.
func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
	if cfg.MaxDepth != 2 {
		t.Errorf("expected default depth 2, got %d", cfg.MaxDepth)
	}
	if cfg.MaxPages != 15 {
		t.Errorf("expected default max pages 15, got %d", cfg.MaxPages)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("expected default fetch timeout 30s, got %v", cfg.FetchTimeout)
	}
}

// TestValidate tests configuration validation.
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, ErrInvalidMaxDepth},
		{"zero pages", func(c *Config) { c.MaxPages = 0 }, ErrInvalidMaxPages},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }, ErrInvalidFetchTimeout},
		{"zero queue factor", func(c *Config) { c.QueueFactor = 0 }, ErrInvalidQueueFactor},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, ErrInvalidBatchSize},
		{"unknown renderer", func(c *Config) { c.Renderer = "dom" }, ErrInvalidRenderer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.modify(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

// TestLoad tests YAML file loading and overlay semantics.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns ErrConfigNotFound with defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got %v", err)
		}
		if cfg.MaxPages != DefaultMaxPages {
			t.Errorf("expected defaults on missing file, got max pages %d", cfg.MaxPages)
		}
	})

	t.Run("file overlays only the keys it sets", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".pagelens")
		content := "max_pages: 5\nrenderer: static\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if cfg.MaxPages != 5 {
			t.Errorf("expected max pages 5, got %d", cfg.MaxPages)
		}
		if cfg.Renderer != RendererStatic {
			t.Errorf("expected static renderer, got %s", cfg.Renderer)
		}
		if cfg.MaxDepth != DefaultMaxDepth {
			t.Errorf("unset keys must keep defaults, got depth %d", cfg.MaxDepth)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".pagelens")
		if err := os.WriteFile(path, []byte("max_pages: [oops"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected an error for malformed yaml")
		}
	})
}
