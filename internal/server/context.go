package server

import (
	"context"
	"sync"

	"google.golang.org/api/option"

	"github.com/teemow/gmailmcp/auth"
	"github.com/teemow/gmailmcp/internal/instrumentation"
)

// ServerContext carries the dependencies shared by all MCP tool handlers.
//
// It deliberately holds no Gmail clients: credential resolution is repeated
// on every tool invocation and each call constructs its own short-lived
// client, so a stale bundle in the environment or on disk never leaks into
// later calls.
type ServerContext struct {
	ctx      context.Context
	cancel   context.CancelFunc
	resolver *auth.Resolver

	mu          sync.RWMutex
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	clientOpts  []option.ClientOption
	shutdown    bool
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context) *ServerContext {
	shutdownCtx, cancel := context.WithCancel(ctx)
	return &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		resolver: auth.NewResolver(),
	}
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Resolver returns the credential resolver used for tool invocations.
func (sc *ServerContext) Resolver() *auth.Resolver {
	return sc.resolver
}

// SetResolver replaces the credential resolver. Used by tests.
func (sc *ServerContext) SetResolver(r *auth.Resolver) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.resolver = r
}

// Metrics returns the metrics recorder, or nil if instrumentation is not
// configured.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetMetrics sets the metrics recorder used by tool instrumentation.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// AuditLogger returns the audit logger, or nil if not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// SetAuditLogger sets the audit logger used by tool instrumentation.
func (sc *ServerContext) SetAuditLogger(l *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = l
}

// ClientOptions returns extra options applied when constructing Gmail
// clients, or nil if none are set.
func (sc *ServerContext) ClientOptions() []option.ClientOption {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.clientOpts
}

// SetClientOptions sets extra options applied when constructing Gmail
// clients. Tests use this to point clients at a stub endpoint.
func (sc *ServerContext) SetClientOptions(opts ...option.ClientOption) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.clientOpts = opts
}

// IsShutdown returns whether the server has been shut down.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
