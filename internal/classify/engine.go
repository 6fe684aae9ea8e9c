package classify

import (
	"sort"

	"github.com/short-int-ali/PageLens/internal/model"
)

// Signal is one atomic piece of weighted evidence a pattern looks for.
type Signal struct {
	// Kind selects which snapshot surface the matcher runs against.
	Kind model.SignalKind

	// Matcher is the exact value or lexical pattern to test.
	Matcher Matcher

	// Weight is the confidence contributed when the signal matches.
	// Earned at most once per page regardless of how many elements match.
	Weight int
}

// Pattern is a named page archetype defined by a weighted signal set.
type Pattern struct {
	ID          string
	Name        string
	Description string
	Signals     []Signal
}

// Engine scores snapshots against the fixed pattern catalog.
// The catalog is immutable after construction and safe to share across
// concurrent runs without locking.
type Engine struct {
	catalog []Pattern

	// evidencePreview bounds the per-page evidence retained in results.
	evidencePreview int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCatalog replaces the built-in pattern catalog.
// Tests use this to score against hand-built patterns.
func WithCatalog(catalog []Pattern) EngineOption {
	return func(e *Engine) {
		e.catalog = catalog
	}
}

// WithEvidencePreview sets how many signals are retained per match in
// report output.
func WithEvidencePreview(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.evidencePreview = n
		}
	}
}

// NewEngine creates an Engine over the built-in catalog.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:         Catalog(),
		evidencePreview: 3,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClassifyPage scores one snapshot against every pattern in the catalog.
// Matches are returned sorted by descending confidence; ties keep catalog
// order. Patterns with zero confidence are omitted.
//
// Every signal is evaluated independently - a pattern accumulates weight
// across signal kinds - but each signal matches at most once per page
// (first matching element wins). This first-match-wins rule is relied on
// by the comparison thresholds; exhaustive counting would change the
// confidence scale.
func (e *Engine) ClassifyPage(snap *model.PageSnapshot) []model.PatternMatch {
	matches := make([]model.PatternMatch, 0)

	for _, p := range e.catalog {
		var confidence int
		evidence := make([]model.SignalMatch, 0)

		for _, sig := range p.Signals {
			matched, ok := evalSignal(sig, snap)
			if !ok {
				continue
			}
			confidence += sig.Weight
			evidence = append(evidence, model.SignalMatch{
				Kind:    sig.Kind,
				Matched: matched,
				Weight:  sig.Weight,
			})
		}

		if confidence > 0 {
			matches = append(matches, model.PatternMatch{
				PatternID:   p.ID,
				PatternName: p.Name,
				Confidence:  confidence,
				Evidence:    evidence,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// ClassifyAll classifies every snapshot and folds the results into
// site-level aggregated features.
//
// Page classifications retain only a bounded evidence preview per match
// to keep report size predictable. Aggregated features are sorted by
// descending max single-page confidence.
func (e *Engine) ClassifyAll(snaps []*model.PageSnapshot) ([]model.PageClassification, []model.AggregatedFeature) {
	pages := make([]model.PageClassification, 0, len(snaps))
	byID := make(map[string]*model.AggregatedFeature)
	order := make([]string, 0)

	for _, snap := range snaps {
		matches := e.ClassifyPage(snap)

		for _, m := range matches {
			feat, ok := byID[m.PatternID]
			if !ok {
				feat = &model.AggregatedFeature{
					PatternID:   m.PatternID,
					PatternName: m.PatternName,
				}
				byID[m.PatternID] = feat
				order = append(order, m.PatternID)
			}
			if m.Confidence > feat.MaxConfidence {
				feat.MaxConfidence = m.Confidence
			}
			feat.TotalOccurrences++
			feat.EvidencePages = append(feat.EvidencePages, model.EvidencePage{
				URL:         snap.URL,
				Confidence:  m.Confidence,
				TopEvidence: e.topEvidence(m.Evidence),
			})
		}

		pages = append(pages, model.PageClassification{
			URL:             snap.URL,
			Classifications: e.truncateEvidence(matches),
		})
	}

	features := make([]model.AggregatedFeature, 0, len(order))
	for _, id := range order {
		features = append(features, *byID[id])
	}
	sort.SliceStable(features, func(i, j int) bool {
		return features[i].MaxConfidence > features[j].MaxConfidence
	})

	return pages, features
}

// topEvidence returns the strongest signals, bounded by the preview size.
func (e *Engine) topEvidence(evidence []model.SignalMatch) []model.SignalMatch {
	sorted := make([]model.SignalMatch, len(evidence))
	copy(sorted, evidence)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	if len(sorted) > e.evidencePreview {
		sorted = sorted[:e.evidencePreview]
	}
	return sorted
}

// truncateEvidence bounds the evidence carried by each page-level match.
func (e *Engine) truncateEvidence(matches []model.PatternMatch) []model.PatternMatch {
	out := make([]model.PatternMatch, len(matches))
	for i, m := range matches {
		m.Evidence = e.topEvidence(m.Evidence)
		out[i] = m
	}
	return out
}

// evalSignal runs one signal against the snapshot surface its kind names.
// List surfaces use first-match semantics: the first element satisfying
// the matcher supplies the evidence, and enumeration stops there.
func evalSignal(sig Signal, snap *model.PageSnapshot) (string, bool) {
	switch sig.Kind {
	case model.SignalInputType:
		for _, in := range snap.Inputs {
			if matched, ok := sig.Matcher.Match(in.Type); ok {
				return matched, true
			}
		}
	case model.SignalInputName:
		for _, in := range snap.Inputs {
			if matched, ok := sig.Matcher.Match(in.Name); ok {
				return matched, true
			}
		}
	case model.SignalInputPlaceholder:
		for _, in := range snap.Inputs {
			if matched, ok := sig.Matcher.Match(in.Placeholder); ok {
				return matched, true
			}
		}
	case model.SignalButtonText:
		for _, b := range snap.Buttons {
			if matched, ok := sig.Matcher.Match(b.Text); ok {
				return matched, true
			}
		}
	case model.SignalLinkText:
		for _, l := range snap.Links {
			if matched, ok := sig.Matcher.Match(l.Text); ok {
				return matched, true
			}
		}
	case model.SignalLinkHref:
		for _, l := range snap.Links {
			if matched, ok := sig.Matcher.Match(l.Href); ok {
				return matched, true
			}
		}
	case model.SignalVisibleText:
		if matched, ok := sig.Matcher.Match(snap.VisibleText); ok {
			return matched, true
		}
	case model.SignalURL:
		if matched, ok := sig.Matcher.Match(snap.URL); ok {
			return matched, true
		}
	}
	return "", false
}
