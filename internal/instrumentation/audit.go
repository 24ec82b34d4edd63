package instrumentation

import (
	"log/slog"
	"time"
)

// ToolInvocation captures the outcome of a single MCP tool call for audit
// logging.
type ToolInvocation struct {
	Tool      string
	Operation string
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string
}

// NewToolInvocation starts an invocation record for the named tool.
func NewToolInvocation(tool string) *ToolInvocation {
	return &ToolInvocation{
		Tool:      tool,
		StartTime: time.Now(),
	}
}

// WithOperation records the façade operation backing the tool.
func (ti *ToolInvocation) WithOperation(operation string) *ToolInvocation {
	ti.Operation = operation
	return ti
}

// Complete finalizes the record with the call outcome.
func (ti *ToolInvocation) Complete(success bool, err error) {
	ti.Duration = time.Since(ti.StartTime)
	ti.Success = success
	if err != nil {
		ti.Error = err.Error()
	}
}

// Status returns "success" or "error" based on the Success field.
func (ti *ToolInvocation) Status() string {
	if ti.Success {
		return StatusSuccess
	}
	return StatusError
}

// AuditLogger writes one structured log line per tool invocation.
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger creates an audit logger. A nil logger falls back to
// slog.Default.
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{logger: logger}
}

// LogToolInvocation emits the audit record for a completed invocation.
func (a *AuditLogger) LogToolInvocation(ti *ToolInvocation) {
	attrs := []any{
		slog.String("tool", ti.Tool),
		slog.String("status", ti.Status()),
		slog.Duration("duration", ti.Duration),
	}
	if ti.Operation != "" {
		attrs = append(attrs, slog.String("operation", ti.Operation))
	}
	if ti.Error != "" {
		attrs = append(attrs, slog.String("error", ti.Error))
	}
	a.logger.Info("tool invocation", attrs...)
}
