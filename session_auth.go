package authgate

import (
	"context"
	"net/http"
	"time"

	"github.com/opsgate/authgate/session"
)

// SessionAuth resolves users from a session cookie: the cookie value is
// looked up in a [session.Store] and the resulting user ID fetched from the
// user store.
//
// The expiring and persistent variants are the same type over a differently
// configured store: [NewSessionExpAuth] adds a lazy-expiry duration, and
// [NewSessionDBAuth] swaps the in-memory record store for a persistent one.
type SessionAuth struct {
	Auth
	users UserStore
	store *session.Store
}

// NewSessionAuth creates a session strategy over an in-memory, never-expiring
// store.
func NewSessionAuth(users UserStore, sessionName string) *SessionAuth {
	return &SessionAuth{
		Auth:  Auth{sessionName: sessionName},
		users: users,
		store: session.NewStore(session.NewMemoryStore()),
	}
}

// NewSessionExpAuth creates a session strategy whose in-memory store applies
// lazy expiration after duration. A duration of zero or less never expires.
func NewSessionExpAuth(users UserStore, sessionName string, duration time.Duration) *SessionAuth {
	return &SessionAuth{
		Auth:  Auth{sessionName: sessionName},
		users: users,
		store: session.NewStore(session.NewMemoryStore(), session.WithDuration(duration)),
	}
}

// NewSessionDBAuth creates a session strategy over a persistent record store
// (Redis or Postgres backed), with the same lazy-expiry rules as
// [NewSessionExpAuth].
func NewSessionDBAuth(users UserStore, sessionName string, duration time.Duration, records session.RecordStore) *SessionAuth {
	return &SessionAuth{
		Auth:  Auth{sessionName: sessionName},
		users: users,
		store: session.NewStore(records, session.WithDuration(duration)),
	}
}

// Store exposes the underlying session store for callers that manage
// sessions outside the request path.
func (s *SessionAuth) Store() *session.Store {
	return s.store
}

// CurrentUser resolves the request's session cookie to a user. A missing
// cookie, an unknown or expired session, and a user-store failure are all
// soft misses resolving to nil.
func (s *SessionAuth) CurrentUser(ctx context.Context, r *http.Request) *User {
	sid, ok := s.SessionCookie(r)
	if !ok {
		return nil
	}

	userID, ok := s.store.UserID(ctx, sid)
	if !ok {
		return nil
	}

	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil
	}
	return u
}

// CreateSession opens a session for userID and returns its identifier.
func (s *SessionAuth) CreateSession(ctx context.Context, userID string) (string, bool) {
	return s.store.Create(ctx, userID)
}

// DestroySession closes the session named by the request's cookie. It
// reports false when the request carries no cookie or the session is not
// live.
func (s *SessionAuth) DestroySession(ctx context.Context, r *http.Request) bool {
	sid, ok := s.SessionCookie(r)
	if !ok {
		return false
	}
	return s.store.Destroy(ctx, sid)
}
