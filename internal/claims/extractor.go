package claims

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/short-int-ali/PageLens/internal/model"
)

const (
	// maxEvidence caps the literal matches retained per claim.
	maxEvidence = 3

	// Description candidate length bounds.
	minDescriptionLen = 20
	maxDescriptionLen = 200
)

// valueProposition matches sentence openers typical of a product pitch.
var valueProposition = regexp.MustCompile(`(?i)^(we help|we (make|build|are)|our (platform|product|mission|team)|the (best|only|first|easiest|fastest|leading)|(build|create|automate|discover|manage|track) )`)

// sentenceSplit breaks collapsed body text on sentence punctuation.
var sentenceSplit = regexp.MustCompile(`[.!?]\s+`)

var titleCaser = cases.Title(language.English)

// Extractor derives homepage feature claims from a snapshot's lexical
// surface. It holds only static catalogs and is safe for concurrent use.
type Extractor struct {
	categories []Category
	ctas       []ctaAction
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithCategories replaces the built-in claim catalog. Tests use this to
// extract against hand-built categories.
func WithCategories(categories []Category) ExtractorOption {
	return func(e *Extractor) {
		e.categories = categories
	}
}

// NewExtractor creates an Extractor over the built-in catalogs.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		categories: Categories(),
		ctas:       ctaCatalog,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract scans the homepage snapshot and returns its claims, CTA
// actions, and best-effort description.
//
// The claim corpus is the visible text plus all button and link texts,
// so a claim expressed only as a nav label still counts. CTA detection
// deliberately reads button and link text alone.
func (e *Extractor) Extract(snap *model.PageSnapshot) *model.HomepageClaims {
	out := &model.HomepageClaims{
		Claims:     make([]model.Claim, 0),
		CTAActions: make([]string, 0),
	}
	if snap == nil {
		return out
	}

	actionText := controlText(snap)
	corpus := snap.VisibleText + " " + actionText

	for _, cat := range e.categories {
		hits := 0
		evidence := make([]string, 0, maxEvidence)
		for _, keyword := range cat.Keywords {
			m := keyword.FindString(corpus)
			if m == "" {
				continue
			}
			hits++
			if len(evidence) < maxEvidence {
				evidence = append(evidence, m)
			}
		}
		if hits == 0 {
			continue
		}
		confidence := hits * 25
		if confidence > 100 {
			confidence = 100
		}
		out.Claims = append(out.Claims, model.Claim{
			ID:         cat.ID,
			Label:      cat.Label,
			Confidence: confidence,
			Evidence:   evidence,
		})
	}

	out.CTAActions = e.extractCTAs(actionText)
	out.Description = extractDescription(snap.VisibleText)
	return out
}

// extractCTAs returns the de-duplicated, title-cased action names found
// in the button/link text, in catalog order.
func (e *Extractor) extractCTAs(actionText string) []string {
	actions := make([]string, 0)
	for _, cta := range e.ctas {
		if cta.pattern.MatchString(actionText) {
			actions = append(actions, titleCaser.String(cta.name))
		}
	}
	return actions
}

// controlText concatenates all button and link texts.
func controlText(snap *model.PageSnapshot) string {
	var sb strings.Builder
	for _, b := range snap.Buttons {
		sb.WriteString(b.Text)
		sb.WriteString(" ")
	}
	for _, l := range snap.Links {
		sb.WriteString(l.Text)
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}

// extractDescription scans body-text sentences of qualifying length for
// the first one that reads like a value proposition. When none does, the
// first qualifying-length sentence serves as a last resort.
func extractDescription(visibleText string) string {
	var fallback string
	for _, segment := range sentenceSplit.Split(visibleText, -1) {
		segment = strings.TrimSpace(strings.TrimRight(segment, ".!?"))
		if len(segment) < minDescriptionLen || len(segment) > maxDescriptionLen {
			continue
		}
		if valueProposition.MatchString(segment) {
			return segment
		}
		if fallback == "" {
			fallback = segment
		}
	}
	return fallback
}
