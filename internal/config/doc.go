// Package config provides configuration management for PageLens.
//
// Configuration flows from three sources, lowest to highest precedence:
// built-in defaults, an optional YAML file (.pagelens in the working or
// home directory, or the XDG config dir), and CLI flags. The resulting
// Config is passed by value through the application; nothing reads
// configuration from global state.
//
// The crawl ceilings (depth 2, 15 pages) are intentionally conservative.
// PageLens characterizes a site from a bounded sample; raising the
// ceilings trades run time and renderer load for coverage.
package config
