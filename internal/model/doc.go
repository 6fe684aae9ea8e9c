// Package model defines the data structures shared across PageLens.
//
// The central type is PageSnapshot: the immutable evidence record built for
// each fetched page. Everything downstream of the crawl (classification,
// claim extraction, comparison) consumes snapshots and nothing else - no
// raw DOM or network access escapes that boundary.
//
// The package also defines the derived, request-scoped result types
// (PatternMatch, AggregatedFeature, Claim, Finding) and the AnalysisReport
// wire shape returned to callers. None of these are persisted; they live
// for the duration of one analysis run.
package model
