package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/opsgate/authgate"
	"github.com/opsgate/authgate/internal/audit"
)

type userContextKey struct{}

// UserFromContext returns the user resolved by [Guard] for this request.
func UserFromContext(ctx context.Context) (*authgate.User, bool) {
	u, ok := ctx.Value(userContextKey{}).(*authgate.User)
	return u, ok
}

// Option configures [Guard].
type Option func(*guard)

// WithExcludedPaths sets the exclusion patterns consulted per request.
func WithExcludedPaths(paths []string) Option {
	return func(g *guard) {
		g.excluded = paths
	}
}

// WithAuditDispatcher emits auth_granted/auth_denied events per guarded
// request.
func WithAuditDispatcher(d *authgate.AuditDispatcher) Option {
	return func(g *guard) {
		g.auditor = d
	}
}

// WithMetrics records decision counters and evaluation latency.
func WithMetrics(m *authgate.Metrics) Option {
	return func(g *guard) {
		g.metrics = m
	}
}

type guard struct {
	strategy authgate.Strategy
	excluded []string
	auditor  *authgate.AuditDispatcher
	metrics  *authgate.Metrics
}

// Guard returns middleware running [authgate.Evaluate] on every request.
func Guard(strategy authgate.Strategy, opts ...Option) func(http.Handler) http.Handler {
	g := &guard{strategy: strategy}
	for _, opt := range opts {
		opt(g)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g.strategy == nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			start := time.Now()
			decision := authgate.Evaluate(r.Context(), g.strategy, r, g.excluded)
			g.metrics.ObserveDecision(decision.Kind, time.Since(start))
			g.audit(r, decision)

			switch decision.Kind {
			case authgate.DecisionNotRequired:
				next.ServeHTTP(w, r)
			case authgate.DecisionUnauthorized:
				writeError(w, http.StatusUnauthorized, "Unauthorized")
			case authgate.DecisionForbidden:
				writeError(w, http.StatusForbidden, "Forbidden")
			case authgate.DecisionAuthenticated:
				ctx := context.WithValue(r.Context(), userContextKey{}, decision.User)
				next.ServeHTTP(w, r.WithContext(ctx))
			default:
				writeError(w, http.StatusForbidden, "Forbidden")
			}
		})
	}
}

func (g *guard) audit(r *http.Request, decision authgate.Decision) {
	if g.auditor == nil || decision.Kind == authgate.DecisionNotRequired {
		return
	}

	event := audit.Event{
		Timestamp: time.Now(),
		Path:      r.URL.Path,
		IP:        r.RemoteAddr,
	}
	if decision.Kind == authgate.DecisionAuthenticated {
		event.EventType = audit.TypeAuthGranted
		event.Success = true
		event.UserID = decision.User.ID
	} else {
		event.EventType = audit.TypeAuthDenied
		event.Error = decision.Kind.String()
	}

	g.auditor.Emit(event)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
