// Package logging assembles the structured slog loggers used across livepipe.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// defines the standardized attribute keys (component, run_id, status, attempt)
// so every restart event is logged with the same shape. A no-op logger is
// provided for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// data consistent with the rest of the tool.
package logging
