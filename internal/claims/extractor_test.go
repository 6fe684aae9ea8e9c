package claims

import (
	"strings"
	"testing"

	"github.com/short-int-ali/PageLens/internal/model"
)

func claimByID(t *testing.T, claims []model.Claim, id string) model.Claim {
	t.Helper()
	for _, c := range claims {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("claim %s not found in %+v", id, claims)
	return model.Claim{}
}

// TestExtract tests claim detection and the confidence scale.
func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("one hit scores 25", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			URL:     "https://site.test",
			Buttons: []model.Button{{Text: "Log In"}},
		}
		got := NewExtractor().Extract(snap)
		if len(got.Claims) != 1 {
			t.Fatalf("expected exactly one claim, got %+v", got.Claims)
		}
		c := got.Claims[0]
		if c.ID != ClaimUserAccounts || c.Confidence != 25 {
			t.Errorf("expected USER_ACCOUNTS at 25, got %s at %d", c.ID, c.Confidence)
		}
		if len(c.Evidence) != 1 || c.Evidence[0] != "Log In" {
			t.Errorf("expected the literal match as evidence, got %v", c.Evidence)
		}
	})

	t.Run("hits accumulate per distinct keyword and cap at 100", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			URL:         "https://site.test",
			VisibleText: "Log in or sign up, create an account, or manage your account settings. Log in again.",
		}
		got := NewExtractor().Extract(snap)
		c := claimByID(t, got.Claims, ClaimUserAccounts)
		if c.Confidence != 100 {
			t.Errorf("4 distinct keyword hits must score 100, got %d", c.Confidence)
		}
		if len(c.Evidence) != 3 {
			t.Errorf("evidence must cap at 3 entries, got %v", c.Evidence)
		}
	})

	t.Run("a repeated keyword counts once", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			URL:         "https://site.test",
			VisibleText: "Search here. Search there. Search everywhere.",
		}
		got := NewExtractor().Extract(snap)
		c := claimByID(t, got.Claims, ClaimSearch)
		if c.Confidence != 25 {
			t.Errorf("one keyword pattern matching many times scores 25, got %d", c.Confidence)
		}
	})

	t.Run("zero hits emits no claim", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			URL:         "https://site.test",
			VisibleText: "Lorem ipsum dolor sit amet.",
		}
		got := NewExtractor().Extract(snap)
		if len(got.Claims) != 0 {
			t.Errorf("expected no claims, got %+v", got.Claims)
		}
	})

	t.Run("link and button text feed the claim corpus", func(t *testing.T) {
		t.Parallel()

		snap := &model.PageSnapshot{
			URL:   "https://site.test",
			Links: []model.Link{{Href: "https://site.test/pricing", Text: "Pricing"}},
		}
		got := NewExtractor().Extract(snap)
		claimByID(t, got.Claims, ClaimPricingTiers)
	})

	t.Run("nil snapshot yields an empty result", func(t *testing.T) {
		t.Parallel()

		got := NewExtractor().Extract(nil)
		if len(got.Claims) != 0 || len(got.CTAActions) != 0 || got.Description != "" {
			t.Errorf("expected empty result, got %+v", got)
		}
	})
}

// TestExtractCTAs tests that CTAs come from controls, not body text.
func TestExtractCTAs(t *testing.T) {
	t.Parallel()

	snap := &model.PageSnapshot{
		URL:         "https://site.test",
		VisibleText: "You can get started with our platform and subscribe by mail.",
		Buttons: []model.Button{
			{Text: "Start your free trial"},
			{Text: "Start Your Free Trial Today"},
		},
		Links: []model.Link{{Href: "https://site.test/contact", Text: "Contact us"}},
	}
	got := NewExtractor().Extract(snap)

	want := []string{"Start Free Trial", "Contact Us"}
	if len(got.CTAActions) != len(want) {
		t.Fatalf("expected %v, got %v", want, got.CTAActions)
	}
	for i := range want {
		if got.CTAActions[i] != want[i] {
			t.Errorf("expected CTA %q at %d, got %q", want[i], i, got.CTAActions[i])
		}
	}
	for _, a := range got.CTAActions {
		if a == "Get Started" || a == "Subscribe" {
			t.Errorf("body-text phrase leaked into CTAs: %q", a)
		}
	}
}

// TestExtractDescription tests the value-proposition heuristic.
func TestExtractDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text, want string
	}{
		{
			name: "value proposition preferred over earlier sentences",
			text: "Welcome back to the product of the year. We help teams ship software faster than ever. Read our blog.",
			want: "We help teams ship software faster than ever",
		},
		{
			name: "first qualifying sentence as last resort",
			text: "Short. A perfectly ordinary sentence about the product. Another one follows here.",
			want: "A perfectly ordinary sentence about the product",
		},
		{
			name: "overlong sentences are skipped",
			text: strings.Repeat("very long filler text ", 20) + ". We make websites simple to analyze.",
			want: "We make websites simple to analyze",
		},
		{
			name: "no qualifying sentence yields empty",
			text: "Hi. Bye. Ok.",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := extractDescription(tt.text); got != tt.want {
				t.Errorf("extractDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}
