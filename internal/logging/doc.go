// Package logging provides structured logging with per-module log level configuration.
//
// The logging system uses Go's slog package with automatic output routing:
//   - Logs to systemd journal when available (Linux systems with journald)
//   - Logs to stdout when a terminal, pipe, or file is connected
//   - Logs to a ring buffer backing the /api/logs/stream SSE endpoint
//
// Initialize the logging system once at startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",      // Global log level: debug, info, warn, error
//		Format: "text",      // Output format: text or json
//		Modules: map[string]string{
//			"hwlight": "debug",  // Per-module overrides
//			"api":     "warn",
//		},
//	})
//
// Get a logger for your module:
//
//	logger := logging.GetLogger("hwlight")
//	logger.Info("Light state updated", "light", "battery")
//
// When running under systemd:
//
//	journalctl -t lightsd -f             # Follow live
//	journalctl -t lightsd MODULE=hwlight # Filter by module
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//	hwlight = "debug"
//	api = "warn"
package logging
