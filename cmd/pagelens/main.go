// Package main provides the entry point for the PageLens CLI.
//
// PageLens analyzes a public website by crawling a bounded set of its
// pages, classifying what each page functionally exhibits, extracting
// what the homepage claims to offer, and reconciling the two into an
// explainable gap report.
//
// Usage:
//
//	pagelens analyze <url>
//	pagelens serve --addr :8080
//
// See --help for all available options.
package main

// main is the entry point for PageLens.
func main() {
	Execute()
}
