package model

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// TestNewPageSnapshot tests snapshot construction invariants.
func TestNewPageSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("defaults nil slices to empty", func(t *testing.T) {
		t.Parallel()

		s := NewPageSnapshot("https://example.com", "Example", "hello", nil, nil, nil)

		if s.Inputs == nil || s.Buttons == nil || s.Links == nil {
			t.Error("expected all slices to be non-nil")
		}
		if len(s.Inputs) != 0 || len(s.Buttons) != 0 || len(s.Links) != 0 {
			t.Error("expected all slices to be empty")
		}
	})

	t.Run("truncates visible text to cap", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", MaxVisibleText+1000)
		s := NewPageSnapshot("https://example.com", "", long, nil, nil, nil)

		if len(s.VisibleText) != MaxVisibleText {
			t.Errorf("expected visible text of %d bytes, got %d", MaxVisibleText, len(s.VisibleText))
		}
	})

	t.Run("never splits a rune at the cap", func(t *testing.T) {
		t.Parallel()

		// Fill to one byte short of the cap, then append a multi-byte
		// rune straddling the boundary.
		long := strings.Repeat("a", MaxVisibleText-1) + "é" + strings.Repeat("b", 100)
		s := NewPageSnapshot("https://example.com", "", long, nil, nil, nil)

		if !utf8.ValidString(s.VisibleText) {
			t.Error("truncated visible text must remain valid UTF-8")
		}
		if len(s.VisibleText) != MaxVisibleText-1 {
			t.Errorf("expected the straddling rune to be dropped, got %d bytes", len(s.VisibleText))
		}
	})

	t.Run("keeps short text unchanged", func(t *testing.T) {
		t.Parallel()

		s := NewPageSnapshot("https://example.com", "", "short text", nil, nil, nil)
		if s.VisibleText != "short text" {
			t.Errorf("expected unchanged text, got %q", s.VisibleText)
		}
	})
}

// TestPageClassificationPrimary tests primary classification selection.
func TestPageClassificationPrimary(t *testing.T) {
	t.Parallel()

	t.Run("returns head of sorted list", func(t *testing.T) {
		t.Parallel()

		pc := PageClassification{
			URL: "https://example.com",
			Classifications: []PatternMatch{
				{PatternID: "authentication", Confidence: 70},
				{PatternID: "search", Confidence: 30},
			},
		}

		primary, ok := pc.Primary()
		if !ok {
			t.Fatal("expected a primary classification")
		}
		if primary.PatternID != "authentication" {
			t.Errorf("expected authentication, got %s", primary.PatternID)
		}
	})

	t.Run("absent when nothing matched", func(t *testing.T) {
		t.Parallel()

		pc := PageClassification{URL: "https://example.com"}
		if _, ok := pc.Primary(); ok {
			t.Error("expected no primary classification")
		}
	})
}

// TestFindingTypeRank tests severity ordering of finding types.
func TestFindingTypeRank(t *testing.T) {
	t.Parallel()

	if FindingClaimedNotDetected.Rank() >= FindingWeakDetection.Rank() {
		t.Error("claimed_not_detected must rank before weak_detection")
	}
	if FindingWeakDetection.Rank() >= FindingDetectedNotClaimed.Rank() {
		t.Error("weak_detection must rank before detected_not_claimed")
	}
	if FindingType("bogus").Rank() <= FindingDetectedNotClaimed.Rank() {
		t.Error("unknown types must rank last")
	}
}
