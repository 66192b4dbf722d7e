// Package authgate is a request authentication layer for HTTP APIs. It decides
// per incoming request whether the caller must be authenticated, extracts
// credentials from the Authorization header or a session cookie, resolves them
// against a user store, and maintains server-side session state with optional
// expiration and persistence.
//
// The package is designed for concurrent server workloads: a [Strategy] built
// through [Builder.Build] is safe to share across request goroutines.
//
// # Architecture boundaries
//
// authgate is the public surface. It exposes [Strategy], [Builder], [Config],
// [Decision], the path matcher, and the credential decoding helpers. Session
// record storage lives in the session subpackage, password hashing in the
// password subpackage, and the HTTP guard in the middleware subpackage. Audit
// event plumbing lives under internal/ and is re-exported as aliases only.
//
// # What this package must NOT do
//
//   - Own request parsing or routing. It consumes *http.Request and never
//     registers handlers of its own.
//   - Mutate user records. The [UserStore] collaborator is read-only here.
//   - Sign or verify tokens. Credentials are either a Basic header or an
//     opaque session identifier.
//
// # Failure contract
//
// Absent or malformed credentials, decode failures, unknown or expired
// sessions, and collaborator lookup errors are all soft misses: they resolve
// to an absent value and ultimately to a 401 or 403 at the boundary. Hard
// errors are reserved for configuration and wiring defects surfaced at
// startup by [Config.Validate] and [Builder.Build].
package authgate
