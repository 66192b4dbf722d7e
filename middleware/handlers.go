package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/opsgate/authgate"
	"github.com/opsgate/authgate/internal/audit"
)

// SessionHandlers serves the session login and logout endpoints for the
// session-based strategies.
type SessionHandlers struct {
	strategy    authgate.Strategy
	users       authgate.UserStore
	hasher      authgate.Hasher
	sessionName string
	auditor     *authgate.AuditDispatcher
	metrics     *authgate.Metrics
}

// HandlerOption configures [SessionHandlers].
type HandlerOption func(*SessionHandlers)

// WithHandlerAudit emits session_created/session_destroyed events.
func WithHandlerAudit(d *authgate.AuditDispatcher) HandlerOption {
	return func(h *SessionHandlers) {
		h.auditor = d
	}
}

// WithHandlerMetrics counts opened sessions.
func WithHandlerMetrics(m *authgate.Metrics) HandlerOption {
	return func(h *SessionHandlers) {
		h.metrics = m
	}
}

// NewSessionHandlers wires the login/logout endpoints. sessionName is the
// cookie the login response sets and the logout request reads.
func NewSessionHandlers(strategy authgate.Strategy, users authgate.UserStore, hasher authgate.Hasher, sessionName string, opts ...HandlerOption) *SessionHandlers {
	h := &SessionHandlers{
		strategy:    strategy,
		users:       users,
		hasher:      hasher,
		sessionName: sessionName,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Login authenticates form credentials (email, password) and opens a
// session. Responses: 400 on a missing field, 404 when no user matches the
// email, 401 when no matching user's password verifies, 200 with the user
// JSON and the session cookie otherwise.
func (h *SessionHandlers) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.PostFormValue("email"))
	pass := strings.TrimSpace(r.PostFormValue("password"))
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email missing"})
		return
	}
	if pass == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "password missing"})
		return
	}

	users, err := h.users.Search(r.Context(), map[string]string{"email": email})
	if err != nil || len(users) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no user found for this email"})
		return
	}

	for i := range users {
		if !h.hasher.Verify(users[i].PasswordHash, pass) {
			continue
		}

		sid, ok := h.strategy.CreateSession(r.Context(), users[i].ID)
		if !ok {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "session creation failed"})
			return
		}

		h.metrics.SessionCreated()
		h.audit(audit.TypeSessionCreated, users[i].ID, sid, r, true)

		http.SetCookie(w, &http.Cookie{
			Name:     h.sessionName,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
		})
		writeJSON(w, http.StatusOK, users[i])
		return
	}

	writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "wrong password"})
}

// Logout destroys the session named by the request's cookie. Responses: 404
// when no live session could be destroyed, 200 with an empty JSON object
// otherwise. The session cookie is expired on success.
func (h *SessionHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	sid, _ := h.strategy.SessionCookie(r)

	if !h.strategy.DestroySession(r.Context(), r) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
		return
	}

	h.audit(audit.TypeSessionDestroyed, "", sid, r, true)

	http.SetCookie(w, &http.Cookie{
		Name:   h.sessionName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	writeJSON(w, http.StatusOK, map[string]string{})
}

func (h *SessionHandlers) audit(eventType, userID, sessionID string, r *http.Request, success bool) {
	if h.auditor == nil {
		return
	}
	h.auditor.Emit(audit.Event{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		SessionID: sessionID,
		Path:      r.URL.Path,
		IP:        r.RemoteAddr,
		Success:   success,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
