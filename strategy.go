package authgate

import (
	"context"
	"net/http"
)

// Strategy is the decision contract consumed by the request pipeline. All
// variants expose the same capability set; swapping the variant changes
// behavior without changing the calling protocol.
//
// CurrentUser, CreateSession, and DestroySession follow soft-miss semantics:
// they report absence instead of returning errors.
type Strategy interface {
	// RequireAuth reports whether the path needs authentication.
	RequireAuth(path string, excludedPaths []string) bool

	// AuthorizationHeader returns the Authorization header verbatim.
	AuthorizationHeader(r *http.Request) (string, bool)

	// SessionCookie returns the value of the configured session cookie.
	SessionCookie(r *http.Request) (string, bool)

	// CurrentUser resolves the request's credential to a user, or nil.
	CurrentUser(ctx context.Context, r *http.Request) *User

	// CreateSession opens a session for userID. Non-session variants miss.
	CreateSession(ctx context.Context, userID string) (string, bool)

	// DestroySession closes the session named by the request's cookie.
	DestroySession(ctx context.Context, r *http.Request) bool
}

// Auth is the base strategy. It answers the path question and reads request
// credentials but never resolves a user, so every guarded request is denied.
// The other variants embed it and override CurrentUser and the session
// lifecycle.
type Auth struct {
	sessionName string
}

// NewAuth creates the base strategy. sessionName may be empty when no
// session variant is layered on top.
func NewAuth(sessionName string) *Auth {
	return &Auth{sessionName: sessionName}
}

// RequireAuth delegates to the package-level [RequireAuth] matcher.
func (a *Auth) RequireAuth(path string, excludedPaths []string) bool {
	return RequireAuth(path, excludedPaths)
}

// AuthorizationHeader returns the request's Authorization header verbatim,
// or a miss when the request is nil or the header is absent.
func (a *Auth) AuthorizationHeader(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	v := r.Header.Get("Authorization")
	if v == "" {
		return "", false
	}
	return v, true
}

// SessionCookie returns the value of the configured session cookie, or a
// miss when the request is nil, no cookie name is configured, or the cookie
// is absent or empty.
func (a *Auth) SessionCookie(r *http.Request) (string, bool) {
	if r == nil || a.sessionName == "" {
		return "", false
	}
	c, err := r.Cookie(a.sessionName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// CurrentUser always returns nil on the base strategy.
func (a *Auth) CurrentUser(ctx context.Context, r *http.Request) *User {
	return nil
}

// CreateSession always misses on the base strategy.
func (a *Auth) CreateSession(ctx context.Context, userID string) (string, bool) {
	return "", false
}

// DestroySession always misses on the base strategy.
func (a *Auth) DestroySession(ctx context.Context, r *http.Request) bool {
	return false
}

// Evaluate runs the request-scoped decision state machine:
//
//	not required            -> DecisionNotRequired
//	no header and no cookie -> DecisionUnauthorized
//	no resolved user        -> DecisionForbidden
//	otherwise               -> DecisionAuthenticated carrying the user
func Evaluate(ctx context.Context, s Strategy, r *http.Request, excludedPaths []string) Decision {
	var path string
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}

	if !s.RequireAuth(path, excludedPaths) {
		return Decision{Kind: DecisionNotRequired}
	}

	_, hasHeader := s.AuthorizationHeader(r)
	_, hasCookie := s.SessionCookie(r)
	if !hasHeader && !hasCookie {
		return Decision{Kind: DecisionUnauthorized}
	}

	user := s.CurrentUser(ctx, r)
	if user == nil {
		return Decision{Kind: DecisionForbidden}
	}

	return Decision{Kind: DecisionAuthenticated, User: user}
}
