// Package logging assembles the structured slog loggers used across
// reframe commands.
//
// It owns the console and JSON handlers, centralizes level plumbing, and
// provides a no-op logger for tests and wiring code that cannot fail. Log
// output goes to stderr so stdout stays reserved for plan tables and JSON
// reports.
//
// Prefer these constructors over hand-rolled slog setup so every command
// emits lines with the same shape.
package logging
