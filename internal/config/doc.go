// Package config loads, normalizes, and validates reframe configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/reframe/config.toml or a
// project-local reframe.toml. Behavioral settings such as the scan
// extension and extra family words are validated strictly because a typo
// there silently changes which files get renamed; logging settings are
// coerced to safe defaults instead.
//
// Always obtain settings through this package so downstream code receives
// sanitized tokens and expanded paths.
package config
