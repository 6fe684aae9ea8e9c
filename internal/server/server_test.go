package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/short-int-ali/PageLens/internal/claims"
	"github.com/short-int-ali/PageLens/internal/classify"
	"github.com/short-int-ali/PageLens/internal/compare"
	"github.com/short-int-ali/PageLens/internal/crawler"
	"github.com/short-int-ali/PageLens/internal/model"
	"github.com/short-int-ali/PageLens/internal/pipeline"
	"github.com/short-int-ali/PageLens/internal/render"
)

// fakeRenderer serves scripted extractions without any network.
type fakeRenderer struct {
	pages map[string]*render.PageExtraction
}

func (f *fakeRenderer) Fetch(_ context.Context, pageURL string, _ time.Duration) (*render.PageExtraction, error) {
	if ex, ok := f.pages[pageURL]; ok {
		return ex, nil
	}
	return nil, errors.New("connection refused")
}

func (f *fakeRenderer) Close() error { return nil }

func testServer(f *fakeRenderer) *Server {
	return New(func() *pipeline.Pipeline {
		p := pipeline.New()
		p.AddSteps(
			pipeline.NewCrawlStep(crawler.New(f)),
			pipeline.NewClassifyStep(classify.NewEngine()),
			pipeline.NewClaimsStep(claims.NewExtractor()),
			pipeline.NewCompareStep(compare.NewEngine()),
			pipeline.NewReasoningStep(),
		)
		return p
	})
}

func postAnalyze(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestHandleAnalyze tests the endpoint's status mapping.
func TestHandleAnalyze(t *testing.T) {
	t.Parallel()

	healthy := &fakeRenderer{pages: map[string]*render.PageExtraction{
		"https://site.test": {
			FinalURL: "https://site.test",
			Title:    "Home",
			Buttons:  []model.Button{{Text: "Log In"}},
			Inputs:   []model.Input{{Type: "password", Name: "pass"}, {Type: "email", Name: "mail"}},
		},
	}}

	t.Run("successful analysis returns the report", func(t *testing.T) {
		t.Parallel()

		rec := postAnalyze(t, testServer(healthy).Router(), `{"url":"https://site.test"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var report model.AnalysisReport
		if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
			t.Fatalf("response is not a report: %v", err)
		}
		if report.Crawl.PagesCrawled != 1 {
			t.Errorf("expected 1 crawled page, got %d", report.Crawl.PagesCrawled)
		}
		if len(report.Comparison.Findings) != 0 {
			t.Errorf("expected no findings for the login site, got %+v", report.Comparison.Findings)
		}
	})

	t.Run("bare hostname is upgraded to https", func(t *testing.T) {
		t.Parallel()

		rec := postAnalyze(t, testServer(healthy).Router(), `{"url":"site.test"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 after https upgrade, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("missing url is a 400", func(t *testing.T) {
		t.Parallel()

		rec := postAnalyze(t, testServer(healthy).Router(), `{}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		t.Parallel()

		rec := postAnalyze(t, testServer(healthy).Router(), `{"url":`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("plaintext http is refused with a 400", func(t *testing.T) {
		t.Parallel()

		rec := postAnalyze(t, testServer(healthy).Router(), `{"url":"http://site.test"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "https") {
			t.Errorf("error must point at https, got %s", rec.Body.String())
		}
	})

	t.Run("unreachable site is a 422", func(t *testing.T) {
		t.Parallel()

		down := &fakeRenderer{pages: map[string]*render.PageExtraction{}}
		rec := postAnalyze(t, testServer(down).Router(), `{"url":"https://down.test"}`)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

// TestHandleHealth tests the liveness endpoint.
func TestHandleHealth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	testServer(&fakeRenderer{}).Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

// TestNormalizeStartURL tests input validation rules.
func TestNormalizeStartURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "https://site.test", want: "https://site.test"},
		{in: "  https://site.test/path  ", want: "https://site.test/path"},
		{in: "site.test", want: "https://site.test"},
		{in: "http://site.test", wantErr: true},
		{in: "ftp://site.test", wantErr: true},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}
	for _, tt := range tests {
		got, err := normalizeStartURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("normalizeStartURL(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("normalizeStartURL(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeStartURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
