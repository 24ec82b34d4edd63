// Package common provides shared helpers for MCP tool handlers.
package common
