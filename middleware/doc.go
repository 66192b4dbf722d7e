// Package middleware adapts authgate's decision state machine to net/http.
//
// [Guard] evaluates every request against the configured strategy and maps
// the outcome to HTTP: excluded paths and authenticated requests continue,
// missing credentials become 401, and credentials that resolve to no user
// become 403. [LoginHandler] and [LogoutHandler] drive the session
// lifecycle for the session-based strategies.
package middleware
