// Package orchestrator wires the loader → parser → template → theme → encoder
// pipeline behind a single Generate call. Every stage can be replaced through
// functional options; missing stages fall back to the built-in
// implementations.
package orchestrator
