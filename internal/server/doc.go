// Package server holds the shared context handed to MCP tool handlers and
// the optional Prometheus metrics endpoint.
package server
