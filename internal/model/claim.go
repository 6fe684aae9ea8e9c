package model

// Claim is one feature the homepage asserts it offers, detected via
// lexical keyword evidence.
//
// Confidence follows a fixed, non-adaptive scale: each distinct keyword
// pattern that matched contributes 25 points, capped at 100. The scale is
// a product constant, not a tunable parameter.
type Claim struct {
	// ID is the claim category identifier (e.g. "USER_ACCOUNTS").
	ID string `json:"id"`

	// Label is the human-readable category name.
	Label string `json:"label"`

	// Confidence is min(matchedKeywordCount*25, 100).
	Confidence int `json:"confidence"`

	// Evidence holds the literal matched substrings, capped to the
	// first three.
	Evidence []string `json:"evidence"`
}

// HomepageClaims is the claim extractor's output for a homepage snapshot.
type HomepageClaims struct {
	// Claims lists every claim category with at least one keyword hit.
	Claims []Claim `json:"claims"`

	// CTAActions is the de-duplicated set of call-to-action names found
	// in button and link text.
	CTAActions []string `json:"cta_actions"`

	// Description is a best-effort one-line product description derived
	// from the homepage body text. Empty when no qualifying line exists.
	Description string `json:"description"`
}
