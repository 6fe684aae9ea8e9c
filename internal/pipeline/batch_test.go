package pipeline

import (
	"context"
	"testing"

	"github.com/short-int-ali/PageLens/internal/render"
)

// TestProcessBatch tests concurrent multi-URL analysis.
func TestProcessBatch(t *testing.T) {
	t.Parallel()

	f := &fakeRenderer{pages: map[string]*render.PageExtraction{
		"https://one.test": {FinalURL: "https://one.test", Title: "One"},
		"https://two.test": {FinalURL: "https://two.test", Title: "Two"},
	}}

	bp := NewBatchProcessor(func() *Pipeline {
		return newAnalysisPipeline(f)
	}, WithConcurrency(2))

	urls := []string{"https://one.test", "https://two.test", "https://down.test"}
	reports, err := bp.ProcessBatch(context.Background(), urls)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected a report per URL, got %d", len(reports))
	}

	// Results keep input order.
	for i, u := range urls {
		if reports[i].Meta.URL != u {
			t.Errorf("report %d: expected %s, got %s", i, u, reports[i].Meta.URL)
		}
	}

	if reports[0].Err != nil || reports[1].Err != nil {
		t.Error("healthy runs must not carry errors")
	}
	if reports[2].Err == nil {
		t.Error("the unreachable URL must carry its error in the report")
	}
}

// TestBatchDefaults tests option handling.
func TestBatchDefaults(t *testing.T) {
	t.Parallel()

	bp := NewBatchProcessor(func() *Pipeline { return New() })
	if bp.concurrency != 3 {
		t.Errorf("expected default concurrency 3, got %d", bp.concurrency)
	}

	bp = NewBatchProcessor(func() *Pipeline { return New() }, WithConcurrency(-1))
	if bp.concurrency != 3 {
		t.Errorf("non-positive concurrency must keep the default, got %d", bp.concurrency)
	}

	reports, err := bp.ProcessBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty batch failed: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("expected no reports for an empty batch, got %d", len(reports))
	}
}
