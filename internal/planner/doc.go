// Package planner builds and executes collision-safe rename plans.
//
// Build is a pure computation over a directory snapshot: it parses every
// candidate name, maps the survivors to canonical targets, and validates
// the whole set before anything touches the filesystem. Validation fails
// closed with typed errors that carry the complete list of offending
// names, never just the first. Execute then applies the entries strictly
// in plan order and stops at the first failure, leaving earlier renames
// in place for the operator to reconcile.
package planner
