// Package audit carries the authentication layer's audit events to
// caller-provided sinks.
package audit

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/opsgate/authgate/internal/redact"
)

// Event types emitted by the guard and the session handlers.
const (
	TypeAuthGranted      = "auth_granted"
	TypeAuthDenied       = "auth_denied"
	TypeSessionCreated   = "session_created"
	TypeSessionDestroyed = "session_destroyed"
)

// Event is one audit record.
type Event struct {
	Timestamp time.Time         `json:"timestamp"`
	EventType string            `json:"event_type"`
	UserID    string            `json:"user_id,omitempty"`
	SessionID string            `json:"session_id,omitempty"`
	Path      string            `json:"path,omitempty"`
	IP        string            `json:"ip,omitempty"`
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Sink receives emitted audit events.
type Sink interface {
	Emit(ctx context.Context, event Event)
}

// NoOpSink drops audit events.
type NoOpSink struct{}

func (NoOpSink) Emit(context.Context, Event) {}

// ChannelSink writes audit events into a buffered channel.
type ChannelSink struct {
	events chan Event
}

func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan Event, buffer),
	}
}

func (s *ChannelSink) Emit(ctx context.Context, event Event) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// JSONWriterSink writes one JSON object per line. Metadata values under
// personally identifiable keys are redacted before encoding.
type JSONWriterSink struct {
	writer    io.Writer
	mu        sync.Mutex
	fields    []string
	redaction string
}

func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer:    w,
		fields:    redact.DefaultFields,
		redaction: redact.DefaultRedaction,
	}
}

// SetRedactedFields replaces the metadata keys treated as PII.
func (s *JSONWriterSink) SetRedactedFields(fields []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields = fields
}

func (s *JSONWriterSink) Emit(ctx context.Context, event Event) {
	if s == nil || s.writer == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event.Metadata = redact.Map(s.fields, s.redaction, event.Metadata)
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
