// Package instrumentation provides OpenTelemetry metrics and tracing for the
// MCP server.
//
// Metrics cover MCP tool invocations and the underlying Gmail API calls, and
// can be exported via Prometheus (scrape endpoint), OTLP, or stdout. Tracing
// is off by default and can be enabled with an OTLP or stdout exporter.
//
// The audit logger writes one structured log line per tool invocation to
// stderr, which is safe alongside the stdio MCP transport.
package instrumentation
