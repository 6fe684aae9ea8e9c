// Package render fetches pages and extracts the evidence PageLens works on.
//
// A Renderer takes a URL and returns a fixed-shape PageExtraction: final
// URL, title, visible text, and the page's inputs, buttons, and links.
// That shape is the entire boundary between page rendering and analysis -
// nothing downstream ever touches a DOM or a network connection.
//
// Two implementations exist:
//
//   - Browser renders pages in headless Chrome via go-rod with stealth
//     patches, so client-rendered applications are seen as a visitor's
//     browser would see them. One tab per page, closed after extraction;
//     one Chrome process per renderer, released by Close.
//   - Static fetches raw HTML over HTTP. No script execution, no Chrome
//     requirement; suitable for server-rendered sites and tests.
//
// Both feed the same goquery-based extractor, so the evidence shape is
// identical regardless of how the page was obtained.
package render
