// Package claims extracts homepage feature claims via lexical keyword
// evidence.
//
// The extractor reads one snapshot, the homepage, and nothing else. Its
// corpus is the visible text plus button and link texts. For each
// category in a fixed catalog, every distinct keyword pattern that
// matches contributes one hit; claim confidence is min(hits*25, 100),
// a product constant. Categories with zero hits are never emitted.
//
// Call-to-action phrases are detected against button and link text only,
// and a best-effort one-line product description is pulled from body
// sentences that read like a value proposition.
package claims
