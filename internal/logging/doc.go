// Package logging provides structured logging for receiptd.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the daemon and CLI.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: detailed debugging info (device property dumps, per-scanner results)
//   - Info: normal operations (discovery passes, API requests, server lifecycle)
//   - Warn: non-fatal issues (devices that refused to open, degraded reads)
//   - Error: fatal issues (startup failures, enumeration failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("discovery pass complete",
//	    zap.String("backend", "linux"),
//	    zap.Int("ranked_candidates", 2),
//	)
//
// # Configuration
//
// CLI commands initialize from the environment so that output stays silent
// unless asked for:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The server initializes with an explicit level from its configuration.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
