package model

// SignalKind identifies which part of a snapshot a signal inspects.
type SignalKind string

// Signal kinds. Each corresponds to one evidence surface on PageSnapshot.
const (
	SignalInputType        SignalKind = "input-type"
	SignalInputName        SignalKind = "input-name"
	SignalInputPlaceholder SignalKind = "input-placeholder"
	SignalButtonText       SignalKind = "button-text"
	SignalLinkText         SignalKind = "link-text"
	SignalLinkHref         SignalKind = "link-href"
	SignalVisibleText      SignalKind = "visible-text"
	SignalURL              SignalKind = "url"
)

// SignalMatch records one matched signal: what kind of evidence it was,
// the text that matched, and the weight it contributed.
type SignalMatch struct {
	Kind    SignalKind `json:"kind"`
	Matched string     `json:"matched"`
	Weight  int        `json:"weight"`
}

// PatternMatch is the result of scoring one snapshot against one pattern.
// Confidence is the exact sum of matched signal weights; it is unbounded
// and not normalized, so it is a score, not a probability.
type PatternMatch struct {
	PatternID   string        `json:"pattern_id"`
	PatternName string        `json:"pattern_name"`
	Confidence  int           `json:"confidence"`
	Evidence    []SignalMatch `json:"evidence"`
}

// PageClassification holds all pattern matches for a single page, sorted
// by descending confidence.
type PageClassification struct {
	URL             string         `json:"url"`
	Classifications []PatternMatch `json:"classifications"`
}

// Primary returns the highest-confidence match for the page, or false if
// no pattern scored above zero.
func (p PageClassification) Primary() (PatternMatch, bool) {
	if len(p.Classifications) == 0 {
		return PatternMatch{}, false
	}
	return p.Classifications[0], true
}

// EvidencePage summarizes one page's contribution to an aggregated feature.
// TopEvidence is a bounded preview (the strongest few signals), not the
// full evidence list, to keep report size predictable.
type EvidencePage struct {
	URL         string        `json:"url"`
	Confidence  int           `json:"confidence"`
	TopEvidence []SignalMatch `json:"top_evidence"`
}

// AggregatedFeature folds a pattern's matches across the whole crawl.
//
// MaxConfidence is the maximum single-page confidence observed, not a sum
// across pages: a feature seen strongly once outranks one seen weakly
// everywhere. TotalOccurrences counts pages with at least one match.
type AggregatedFeature struct {
	PatternID        string         `json:"pattern_id"`
	PatternName      string         `json:"pattern_name"`
	MaxConfidence    int            `json:"max_confidence"`
	TotalOccurrences int            `json:"total_occurrences"`
	EvidencePages    []EvidencePage `json:"evidence_pages"`
}
