// Package classify scores page snapshots against a fixed catalog of
// weighted signal patterns.
//
// A pattern names a page archetype (authentication, e-commerce, live
// chat) and lists the signals that evidence it. Signals are evaluated
// independently against snapshot surfaces (input types and names,
// button and link text, visible text, the page URL); each signal earns
// its weight at most once per page, and a pattern's confidence is the
// exact sum of its matched weights. Patterns with zero confidence never
// appear in results.
//
// Site-level aggregation folds per-page matches into features: the
// maximum single-page confidence, the number of pages exhibiting the
// pattern, and a bounded evidence preview per page.
//
// The catalog is static. Confidence values are deterministic for a
// given snapshot set, which the comparison thresholds depend on.
package classify
