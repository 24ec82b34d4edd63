// Package logging provides slog attribute helpers for consistent structured
// logging across the codebase.
//
// All logging goes to stderr: stdout belongs to the MCP stdio transport and
// must never carry log output.
package logging
