// Package log provides bounded logging built on top of the standard slog
// package.
//
// This package extends slog to provide:
//   - Automatic truncation of oversized attribute values (page text,
//     extracted titles, long URLs)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Info("page fetched",
//	    "url", pageURL,
//	    "title", title, // truncated if oversized
//	)
//
//	slog.SetDefault(logger)
package log
