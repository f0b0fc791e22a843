// Package logging wraps log/slog construction for reelfeed.
//
// It exposes typed attribute helpers, a no-op logger for tests and optional
// dependencies, and component loggers that stamp every record with the
// subsystem that emitted it. Output format defaults to text on a terminal and
// JSON otherwise so scheduled runs produce machine-readable logs.
package logging
