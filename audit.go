package authgate

import (
	internalaudit "github.com/opsgate/authgate/internal/audit"
)

// Audit event types emitted by the middleware guard and session handlers.
const (
	// EventAuthGranted is emitted when a request resolves to a user.
	EventAuthGranted = internalaudit.TypeAuthGranted
	// EventAuthDenied is emitted for unauthorized and forbidden outcomes.
	EventAuthDenied = internalaudit.TypeAuthDenied
	// EventSessionCreated is emitted when a login opens a session.
	EventSessionCreated = internalaudit.TypeSessionCreated
	// EventSessionDestroyed is emitted when a logout closes a session.
	EventSessionDestroyed = internalaudit.TypeSessionDestroyed
)

// AuditDispatcher forwards audit events to a sink off the request path.
// A nil dispatcher is valid and drops everything.
type AuditDispatcher = internalaudit.Dispatcher

// NewAuditDispatcher starts a dispatcher for the given sink, or returns nil
// when auditing is disabled in cfg.
func NewAuditDispatcher(cfg AuditConfig, sink AuditSink) *AuditDispatcher {
	return internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Enabled,
		BufferSize: cfg.BufferSize,
	}, sink)
}
