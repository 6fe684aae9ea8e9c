// Package server exposes the analysis pipeline over an HTTP endpoint.
//
// The boundary is deliberately thin: it validates the start URL, runs a
// fresh pipeline per request, and translates run outcomes into status
// codes. Input problems map to 400, a crawl that produced zero pages to
// 422, and unexpected failures to 500. The response body for a
// successful run is the analysis report's JSON wire shape, identical to
// the CLI's JSON output.
package server
