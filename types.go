package authgate

import (
	"context"
	"io"

	internalaudit "github.com/opsgate/authgate/internal/audit"
)

// User is the external account record referenced by the authentication layer.
// The layer never mutates users; it only resolves credentials against them.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	PasswordHash string `json:"-"`
}

// UserStore is the collaborator interface callers implement to integrate
// authgate with their user database. Search failures and empty result sets
// are both treated as "no match" by the strategies.
type UserStore interface {
	Search(ctx context.Context, filter map[string]string) ([]User, error)
	Get(ctx context.Context, id string) (*User, error)
}

// Hasher is the password hashing collaborator. [password.Bcrypt] is the
// provided implementation.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// DecisionKind classifies the terminal state of one request evaluation.
type DecisionKind uint8

const (
	// DecisionNotRequired means the path is excluded; the request proceeds unauthenticated.
	DecisionNotRequired DecisionKind = iota
	// DecisionUnauthorized means no credential was presented (HTTP 401 at the boundary).
	DecisionUnauthorized
	// DecisionForbidden means a credential was presented but resolved to no user (HTTP 403).
	DecisionForbidden
	// DecisionAuthenticated means the request proceeds carrying the resolved user.
	DecisionAuthenticated
)

// String returns the snake_case name used in audit events and metric labels.
func (k DecisionKind) String() string {
	switch k {
	case DecisionNotRequired:
		return "not_required"
	case DecisionUnauthorized:
		return "unauthorized"
	case DecisionForbidden:
		return "forbidden"
	case DecisionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Decision is the per-request outcome produced by [Evaluate]. User is set
// only when Kind is [DecisionAuthenticated].
type Decision struct {
	Kind DecisionKind
	User *User
}

// AuditEvent is a structured audit record emitted by the guard and the
// session lifecycle handlers.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes one JSON object per line,
// redacting personally identifiable metadata fields.
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
