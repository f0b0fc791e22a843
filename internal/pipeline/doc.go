// Package pipeline executes one full reelfeed run: reconcile the cache
// against the live watchlist, classify the unknowns, and write the artifacts.
//
// A file lock serializes runs; the cache and diagnostics files are
// single-writer and there is no internal locking below this level.
package pipeline
