package classify

import (
	"testing"

	"github.com/short-int-ali/PageLens/internal/model"
)

// loginSnapshot is a plain credential form page.
func loginSnapshot() *model.PageSnapshot {
	return &model.PageSnapshot{
		URL:   "https://site.test/account",
		Title: "Account",
		Inputs: []model.Input{
			{Type: "email", Name: "session_email"},
			{Type: "password", Name: "session_pass"},
		},
		Buttons: []model.Button{{Text: "Log In", Type: "submit"}},
	}
}

// TestCatalogIsWellFormed tests structural invariants of the pattern table.
func TestCatalogIsWellFormed(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, p := range Catalog() {
		if p.ID == "" || p.Name == "" {
			t.Errorf("pattern with empty ID or name: %+v", p)
		}
		if seen[p.ID] {
			t.Errorf("duplicate pattern ID %q", p.ID)
		}
		seen[p.ID] = true
		if len(p.Signals) == 0 {
			t.Errorf("pattern %q has no signals", p.ID)
		}
		for _, sig := range p.Signals {
			if sig.Weight <= 0 {
				t.Errorf("pattern %q carries a non-positive weight", p.ID)
			}
		}
	}
}

// TestCatalogAuthentication tests the credential-form scoring that the
// comparison thresholds are calibrated around.
func TestCatalogAuthentication(t *testing.T) {
	t.Parallel()

	matches := NewEngine().ClassifyPage(loginSnapshot())
	if len(matches) != 1 {
		t.Fatalf("expected only the authentication pattern to match, got %+v", matches)
	}
	m := matches[0]
	if m.PatternID != PatternAuthentication {
		t.Fatalf("expected %s, got %s", PatternAuthentication, m.PatternID)
	}
	// password (30) + email (15) + login button (25)
	if m.Confidence != 70 {
		t.Errorf("expected confidence 70, got %d", m.Confidence)
	}
}

// TestCatalogRegistrationIgnoresPasswordInput tests that a bare password
// field scores as authentication, not registration.
func TestCatalogRegistrationIgnoresPasswordInput(t *testing.T) {
	t.Parallel()

	snap := &model.PageSnapshot{
		URL:    "https://site.test/account",
		Inputs: []model.Input{{Type: "password", Name: "pass"}},
	}
	for _, m := range NewEngine().ClassifyPage(snap) {
		if m.PatternID == PatternRegistration {
			t.Errorf("registration must not score on a password input: %+v", m)
		}
	}
}

// TestCatalogMarketingTextAlone tests that copy about support and chat
// produces no functional detection.
func TestCatalogMarketingTextAlone(t *testing.T) {
	t.Parallel()

	snap := &model.PageSnapshot{
		URL:         "https://site.test",
		Title:       "Home",
		VisibleText: "We offer live chat and 24/7 support for every customer.",
	}
	for _, m := range NewEngine().ClassifyPage(snap) {
		if m.PatternID == PatternChatWidget || m.PatternID == PatternContactForm {
			t.Errorf("marketing text alone must not detect %s: %+v", m.PatternID, m)
		}
	}
}

// TestCatalogSamples spot-checks one representative page per major pattern.
func TestCatalogSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		snap    *model.PageSnapshot
		wantID  string
		wantMin int
	}{
		{
			name: "checkout page",
			snap: &model.PageSnapshot{
				URL:     "https://shop.test/products/widget",
				Buttons: []model.Button{{Text: "Add to Cart"}},
				Links:   []model.Link{{Href: "https://shop.test/cart", Text: "Cart"}},
			},
			wantID:  PatternEcommerce,
			wantMin: 50,
		},
		{
			name: "contact page",
			snap: &model.PageSnapshot{
				URL: "https://site.test/contact",
				Inputs: []model.Input{
					{Type: "text", Name: "name"},
					{Type: "textarea", Name: "message"},
				},
				Buttons: []model.Button{{Text: "Send Message"}},
			},
			wantID:  PatternContactForm,
			wantMin: 50,
		},
		{
			name: "search header",
			snap: &model.PageSnapshot{
				URL:    "https://site.test",
				Inputs: []model.Input{{Type: "search", Name: "q", Placeholder: "Search docs"}},
			},
			wantID:  PatternSearch,
			wantMin: 50,
		},
		{
			name: "newsletter footer",
			snap: &model.PageSnapshot{
				URL:     "https://site.test",
				Inputs:  []model.Input{{Type: "email", Placeholder: "Your email"}},
				Buttons: []model.Button{{Text: "Subscribe"}},
			},
			wantID:  PatternNewsletterSignup,
			wantMin: 50,
		},
		{
			name: "pricing page",
			snap: &model.PageSnapshot{
				URL:         "https://site.test/pricing",
				VisibleText: "Pro plan at $29 per month",
			},
			wantID:  PatternPricingPage,
			wantMin: 40,
		},
		{
			name: "mobile app badges",
			snap: &model.PageSnapshot{
				URL: "https://site.test",
				Links: []model.Link{
					{Href: "https://apps.apple.com/app/id1", Text: "App Store"},
				},
			},
			wantID:  PatternMobileApp,
			wantMin: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			matches := NewEngine().ClassifyPage(tt.snap)
			if len(matches) == 0 {
				t.Fatal("expected at least one match")
			}
			if matches[0].PatternID != tt.wantID {
				t.Fatalf("expected top match %s, got %s (%d)", tt.wantID, matches[0].PatternID, matches[0].Confidence)
			}
			if matches[0].Confidence < tt.wantMin {
				t.Errorf("expected confidence >= %d, got %d", tt.wantMin, matches[0].Confidence)
			}
		})
	}
}
