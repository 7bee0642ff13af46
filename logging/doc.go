// Package logging provides a minimal logging interface and adapters for Fina.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the server, janitor and wiring layer use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - optional size-based log file rotation via lumberjack
//
// The design intentionally keeps the interface minimal so callers are not
// locked into a particular logging backend.
package logging
