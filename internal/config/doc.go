// Package config loads, normalizes, and validates reelfeed configuration.
//
// Configuration lives in a TOML file (default ~/.config/reelfeed/config.toml).
// Defaults are applied first, the file is decoded over them, a small set of
// environment variables override the result, then paths are expanded and the
// final values validated.
package config
