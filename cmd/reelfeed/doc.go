// Package main hosts the reelfeed CLI entrypoint and command graph.
//
// The Cobra-based command tree covers the default pipeline run plus the
// maintenance surface: run history, cache inspection and clearing, and
// configuration scaffolding. A bare invocation runs the pipeline so the
// binary can sit directly behind cron.
package main
