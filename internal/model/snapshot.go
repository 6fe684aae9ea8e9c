package model

import "unicode/utf8"

// MaxVisibleText is the maximum length of a snapshot's visible text in bytes.
// We cap it to bound both memory usage and regex evaluation cost on
// pathologically large pages.
const MaxVisibleText = 50_000

// PageSnapshot is the immutable evidence record for one fetched page.
//
// Design decision: We flatten the page into plain text plus three element
// lists rather than keeping a DOM because:
//  1. It makes the classifier and claim extractor pure functions over data
//  2. It caps memory per page regardless of page complexity
//  3. It decouples analysis from whichever renderer produced the page
//
// A snapshot is immutable once created. Treat all fields as read-only;
// NewPageSnapshot is the only constructor and guarantees fully defaulted
// fields (empty strings and slices, never nil).
type PageSnapshot struct {
	// URL is the canonical page URL after any redirects.
	URL string `json:"url"`

	// Title is the page title, empty if the page has none.
	Title string `json:"title"`

	// VisibleText is the rendered text content, capped at MaxVisibleText.
	VisibleText string `json:"visible_text"`

	// Inputs lists form controls in document order.
	Inputs []Input `json:"inputs"`

	// Buttons lists submit controls and button-styled links in document order.
	Buttons []Button `json:"buttons"`

	// Links lists anchor targets and their visible text in document order.
	Links []Link `json:"links"`
}

// Input describes one form control (input, textarea, select).
type Input struct {
	// Type is the declared control type (text, password, email, search,
	// file, textarea, select, ...).
	Type string `json:"type"`

	// Name is the control's name attribute.
	Name string `json:"name,omitempty"`

	// Placeholder is the control's placeholder attribute.
	Placeholder string `json:"placeholder,omitempty"`
}

// Button describes a submit control or a call-to-action styled link.
type Button struct {
	// Text is the visible button label.
	Text string `json:"text"`

	// Type is the button type (submit, button, link).
	Type string `json:"type,omitempty"`
}

// Link describes one anchor element.
type Link struct {
	// Href is the link target, resolved to an absolute URL where possible.
	Href string `json:"href"`

	// Text is the anchor's visible text.
	Text string `json:"text,omitempty"`
}

// NewPageSnapshot builds a fully defaulted snapshot. Nil slices become
// empty slices and the visible text is truncated to MaxVisibleText, so
// downstream code never has to guard against missing fields.
func NewPageSnapshot(url, title, visibleText string, inputs []Input, buttons []Button, links []Link) *PageSnapshot {
	if len(visibleText) > MaxVisibleText {
		// Back the cut up to a rune boundary so the tail stays valid UTF-8.
		cut := MaxVisibleText
		for cut > 0 && !utf8.RuneStart(visibleText[cut]) {
			cut--
		}
		visibleText = visibleText[:cut]
	}
	if inputs == nil {
		inputs = []Input{}
	}
	if buttons == nil {
		buttons = []Button{}
	}
	if links == nil {
		links = []Link{}
	}
	return &PageSnapshot{
		URL:         url,
		Title:       title,
		VisibleText: visibleText,
		Inputs:      inputs,
		Buttons:     buttons,
		Links:       links,
	}
}
