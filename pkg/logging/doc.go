// Package logging provides structured logging utilities for validator components.
//
// # Overview
//
// This package wraps the standard library slog package with project-specific defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("metval", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("validating batch", "batch", 1)
//	    slog.Debug("opened dataset", "files", paths)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("runner", "v2.0.0", "debug")
//	logger.Info("runner starting", "batches", 3)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug metval validate ./dataset
//	LOG_LEVEL=error metval validate ./dataset/file.nc
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "validating batch",
//	    "module": "metval",
//	    "version": "v1.0.0",
//	    "batch": 1
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "runner.(*Runner).Validate",
//	        "file": "runner.go",
//	        "line": 45
//	    },
//	    "msg": "opening batch",
//	    "module": "metval",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("batch validated",
//	    "batch", 2,
//	    "errors", len(result.Errors),
//	    "duration", time.Since(start),
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("config cache hit")        // Development/troubleshooting
//	slog.Info("validating batch")         // Normal operations
//	slog.Warn("dimension has no values")  // Potential issues
//	slog.Error("check raised exception")  // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to open batch",
//	    "error", err,
//	    "run_id", runID,
//	    "files", len(batch),
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/runner - batch progress, run id and sampling seed
//   - pkg/validator - check exceptions with node path and stack
//   - pkg/configsvc - configuration service fetches
//
// All components share consistent logging format and configuration.
package logging
