package compare

import (
	"strings"
	"testing"

	"github.com/short-int-ali/PageLens/internal/claims"
	"github.com/short-int-ali/PageLens/internal/classify"
	"github.com/short-int-ali/PageLens/internal/model"
)

func feature(id, name string, confidence int, urls ...string) model.AggregatedFeature {
	pages := make([]model.EvidencePage, 0, len(urls))
	for _, u := range urls {
		pages = append(pages, model.EvidencePage{URL: u, Confidence: confidence})
	}
	return model.AggregatedFeature{
		PatternID:        id,
		PatternName:      name,
		MaxConfidence:    confidence,
		TotalOccurrences: len(urls),
		EvidencePages:    pages,
	}
}

func homepageClaims(ids ...string) *model.HomepageClaims {
	hc := &model.HomepageClaims{Claims: make([]model.Claim, 0, len(ids))}
	for _, id := range ids {
		hc.Claims = append(hc.Claims, model.Claim{ID: id, Label: id, Confidence: 25})
	}
	return hc
}

// TestCompareThresholds tests the exact boundary semantics of the
// strong and weak thresholds.
func TestCompareThresholds(t *testing.T) {
	t.Parallel()

	mapping := map[string][]string{"CLAIM": {"pattern"}}

	tests := []struct {
		name        string
		confidence  int
		hasFeature  bool
		wantType    model.FindingType
		wantNone    bool
		wantConf    int
	}{
		{name: "confidence 50 is a strong match", confidence: 50, hasFeature: true, wantNone: true},
		{name: "confidence 49 is a weak detection", confidence: 49, hasFeature: true, wantType: model.FindingWeakDetection, wantConf: 49},
		{name: "confidence 25 is a weak detection", confidence: 25, hasFeature: true, wantType: model.FindingWeakDetection, wantConf: 25},
		{name: "confidence 24 is claimed but not detected", confidence: 24, hasFeature: true, wantType: model.FindingClaimedNotDetected, wantConf: 24},
		{name: "no related match reports confidence 0", hasFeature: false, wantType: model.FindingClaimedNotDetected, wantConf: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var features []model.AggregatedFeature
			if tt.hasFeature {
				features = append(features, feature("pattern", "Pattern", tt.confidence, "https://site.test/p"))
			}

			e := NewEngine(WithMapping(mapping))
			got := e.Compare(homepageClaims("CLAIM"), features)

			if tt.wantNone {
				if len(got.Findings) != 0 {
					t.Fatalf("expected no findings, got %+v", got.Findings)
				}
				if got.Analysis.MatchedCount != 1 {
					t.Errorf("expected 1 matched claim, got %d", got.Analysis.MatchedCount)
				}
				return
			}
			if len(got.Findings) != 1 {
				t.Fatalf("expected 1 finding, got %+v", got.Findings)
			}
			f := got.Findings[0]
			if f.Type != tt.wantType || f.Confidence != tt.wantConf {
				t.Errorf("expected %s at %d, got %s at %d", tt.wantType, tt.wantConf, f.Type, f.Confidence)
			}
		})
	}
}

// TestCompareBestRelatedPattern tests highest-confidence selection with
// first-found tie breaking.
func TestCompareBestRelatedPattern(t *testing.T) {
	t.Parallel()

	mapping := map[string][]string{"CLAIM": {"first", "second", "third"}}
	features := []model.AggregatedFeature{
		feature("second", "Second", 40, "https://site.test/a"),
		feature("first", "First", 40, "https://site.test/b"),
		feature("third", "Third", 30, "https://site.test/c"),
	}

	got := NewEngine(WithMapping(mapping)).Compare(homepageClaims("CLAIM"), features)
	if len(got.Findings) != 1 {
		t.Fatalf("expected 1 weak finding, got %+v", got.Findings)
	}
	// first and second tie at 40; relation order prefers "first".
	if got.Findings[0].EvidencePages[0] != "https://site.test/b" {
		t.Errorf("tie must break on relation order, got evidence %v", got.Findings[0].EvidencePages)
	}
}

// TestCompareUnclaimedFeatures tests underpromoted-feature reporting.
func TestCompareUnclaimedFeatures(t *testing.T) {
	t.Parallel()

	t.Run("strong unrelated feature is reported once", func(t *testing.T) {
		t.Parallel()

		features := []model.AggregatedFeature{
			feature(classify.PatternFileUpload, "File upload", 35, "https://site.test/upload"),
		}
		got := NewEngine().Compare(homepageClaims(), features)
		if len(got.Findings) != 1 || got.Findings[0].Type != model.FindingDetectedNotClaimed {
			t.Fatalf("expected one detected_not_claimed finding, got %+v", got.Findings)
		}
	})

	t.Run("features below the weak threshold stay silent", func(t *testing.T) {
		t.Parallel()

		features := []model.AggregatedFeature{
			feature(classify.PatternFileUpload, "File upload", 20, "https://site.test/upload"),
		}
		got := NewEngine().Compare(homepageClaims(), features)
		for _, f := range got.Findings {
			if f.Type == model.FindingDetectedNotClaimed {
				t.Errorf("sub-threshold feature must not be reported: %+v", f)
			}
		}
	})

	t.Run("a pattern related to any claim is never unclaimed", func(t *testing.T) {
		t.Parallel()

		// USER_ACCOUNTS relates to both authentication and registration;
		// a strong registration detection must not double-report.
		features := []model.AggregatedFeature{
			feature(classify.PatternAuthentication, "User authentication", 70, "https://site.test/login"),
			feature(classify.PatternRegistration, "Account registration", 50, "https://site.test/signup"),
		}
		got := NewEngine().Compare(homepageClaims(claims.ClaimUserAccounts), features)
		if len(got.Findings) != 0 {
			t.Errorf("expected no findings, got %+v", got.Findings)
		}
	})
}

// TestCompareFindingOrder tests the severity ordering of the findings list.
func TestCompareFindingOrder(t *testing.T) {
	t.Parallel()

	mapping := map[string][]string{
		"WEAK":    {"weak_pat"},
		"MISSING": {"missing_pat"},
	}
	features := []model.AggregatedFeature{
		feature("weak_pat", "Weak", 30, "https://site.test/w"),
		feature("extra_pat", "Extra", 60, "https://site.test/x"),
	}

	// Claims arrive weak-first to prove ordering is by rank, not input.
	got := NewEngine(WithMapping(mapping)).Compare(homepageClaims("WEAK", "MISSING"), features)
	if len(got.Findings) != 3 {
		t.Fatalf("expected 3 findings, got %+v", got.Findings)
	}
	wantOrder := []model.FindingType{
		model.FindingClaimedNotDetected,
		model.FindingWeakDetection,
		model.FindingDetectedNotClaimed,
	}
	for i, want := range wantOrder {
		if got.Findings[i].Type != want {
			t.Errorf("finding %d: expected %s, got %s", i, want, got.Findings[i].Type)
		}
	}
}

// TestCompareSummary tests summary assembly rules.
func TestCompareSummary(t *testing.T) {
	t.Parallel()

	t.Run("zero claims overrides the match-rate line", func(t *testing.T) {
		t.Parallel()

		got := NewEngine().Compare(&model.HomepageClaims{}, nil)
		if !strings.Contains(got.Summary, "No clear feature claims") {
			t.Errorf("expected the no-claims summary, got %q", got.Summary)
		}
		if strings.Contains(got.Summary, "match rate") {
			t.Errorf("match rate must not appear without claims, got %q", got.Summary)
		}
	})

	t.Run("segments appear only when nonzero", func(t *testing.T) {
		t.Parallel()

		mapping := map[string][]string{"CLAIM": {"pattern"}}
		features := []model.AggregatedFeature{
			feature("pattern", "Pattern", 80, "https://site.test/p"),
		}
		got := NewEngine(WithMapping(mapping)).Compare(homepageClaims("CLAIM"), features)
		if !strings.Contains(got.Summary, "100% match rate") {
			t.Errorf("expected a 100%% match rate, got %q", got.Summary)
		}
		for _, segment := range []string{"not detected", "Weakly supported", "not claimed"} {
			if strings.Contains(got.Summary, segment) {
				t.Errorf("segment %q must be absent, got %q", segment, got.Summary)
			}
		}
	})
}
