// Package runlog persists per-run summaries in a local SQLite database.
//
// The pipeline never fails a run outright: provider outages degrade to
// unresolved records rather than errors. The run log makes that visible —
// a stretch of runs where everything came back unresolved shows up in
// `reelfeed history` instead of silently producing a useless feed.
package runlog
