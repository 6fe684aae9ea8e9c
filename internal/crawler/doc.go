// Package crawler implements the bounded, domain-scoped page traversal.
//
// # Architecture
//
// The Spider runs a breadth-first search over a work queue of {url, depth}
// pairs, fetching each page through a render.Renderer and producing
// model.PageSnapshot evidence records in discovery order. Traversal state
// (queue, visited set, snapshot list) is owned by a single Crawl call;
// nothing is shared between runs, so concurrent analyses need no locking.
//
// # Bounds
//
// Three ceilings keep any crawl finite and cheap:
//
//   - maxPages caps the number of snapshots produced
//   - maxDepth caps how far links are followed from the start URL
//   - queueFactor*maxPages caps total enqueued work on link-dense sites
//
// The visited set is keyed by normalized URL (lower-cased origin + path,
// query/fragment/trailing slash stripped) and claimed before each fetch,
// so a URL is fetched at most once even when its fetch fails.
//
// # Filtering
//
// Binary/media/style/script extensions, mailto/tel/javascript schemes,
// bare fragments, and logout-style paths are skipped before fetch without
// being counted as errors. Link discovery is limited to same-origin
// targets. Optional robots.txt politeness adds a path-level deny filter.
//
// # Failure model
//
// Per-page fetch errors are recorded and skipped; they never abort the
// run. Only an unparsable start URL fails fast, and a run that produces
// zero snapshots is reported as ErrNothingCrawled by the pipeline.
package crawler
