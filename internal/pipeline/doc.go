// Package pipeline composes the analysis stages into a single run.
//
// An analysis is a strict linear composition: crawl produces snapshots,
// classification scores them, claim extraction reads the homepage,
// comparison reconciles the two, and reasoning records the run's
// interpretive bounds. Each stage is a Step that mutates the shared
// AnalysisReport; no stage depends on anything downstream of it.
//
// Design decision: We use a pipeline pattern instead of direct function
// calls because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context for long-running crawls
//
// The pipeline supports both individual runs and batch processing with
// concurrency control using errgroup.
package pipeline
