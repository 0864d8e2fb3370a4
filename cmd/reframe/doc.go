// Package main hosts the reframe CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into plan and
// apply runs, journal queries, and configuration scaffolding. It
// centralizes configuration resolution and logger construction so the
// subcommands stay declarative; parsing, validation, and the renames
// themselves live in the internal packages.
//
// Tables and JSON go to stdout, log lines to stderr, so plan output can
// be piped without losing diagnostics.
package main
