package authgate

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AuthType values select which [Strategy] variant [Builder.Build] constructs.
const (
	// AuthTypeNone builds the base strategy: every guarded request is denied
	// because no credential ever resolves to a user.
	AuthTypeNone = "auth"
	// AuthTypeBasic builds [BasicAuth].
	AuthTypeBasic = "basic_auth"
	// AuthTypeSession builds [SessionAuth] over an in-memory store.
	AuthTypeSession = "session_auth"
	// AuthTypeSessionExp builds [SessionAuth] with lazy expiration.
	AuthTypeSessionExp = "session_exp_auth"
	// AuthTypeSessionDB builds [SessionAuth] backed by a persistent record store.
	AuthTypeSessionDB = "session_db_auth"
)

// Environment variables recognized by [ConfigFromEnv].
const (
	EnvAuthType        = "AUTH_TYPE"
	EnvSessionName     = "SESSION_NAME"
	EnvSessionDuration = "SESSION_DURATION"
)

// DefaultSessionName is the session cookie name used when SESSION_NAME is unset.
const DefaultSessionName = "_my_session_id"

// Config selects the strategy variant and carries the knobs shared by all
// variants. Configure once at startup and treat as immutable afterwards.
type Config struct {
	// AuthType is one of the AuthType* constants.
	AuthType string

	// SessionName is the cookie carrying the session identifier.
	SessionName string

	// SessionDuration bounds session lifetime for the expiring variants.
	// Zero or negative means sessions never expire.
	SessionDuration time.Duration

	// ExcludedPaths are the exclusion patterns consulted by [RequireAuth].
	ExcludedPaths []string

	Audit   AuditConfig
	Metrics MetricsConfig
}

// AuditConfig controls audit event emission.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
}

// MetricsConfig controls the Prometheus decision metrics.
type MetricsConfig struct {
	Enabled bool

	// Registry defaults to prometheus.DefaultRegisterer when nil.
	Registry prometheus.Registerer
}

func defaultConfig() Config {
	return Config{
		AuthType:    AuthTypeNone,
		SessionName: DefaultSessionName,
	}
}

// ConfigFromEnv builds a Config from the AUTH_TYPE, SESSION_NAME, and
// SESSION_DURATION environment variables. SESSION_DURATION is integer
// seconds; an unset or malformed value degrades to 0 (no expiry) rather
// than failing, matching the behavior callers rely on at startup.
func ConfigFromEnv() Config {
	cfg := defaultConfig()

	if v := os.Getenv(EnvAuthType); v != "" {
		cfg.AuthType = v
	}
	if v := os.Getenv(EnvSessionName); v != "" {
		cfg.SessionName = v
	}
	cfg.SessionDuration = time.Duration(envSeconds(EnvSessionDuration)) * time.Second

	return cfg
}

func envSeconds(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Validate rejects configuration defects that must surface at startup:
// unknown auth types, blank exclusion entries, and session variants without
// a cookie name. Soft-miss handling never reaches here.
func (c Config) Validate() error {
	switch c.AuthType {
	case AuthTypeNone, AuthTypeBasic, AuthTypeSession, AuthTypeSessionExp, AuthTypeSessionDB:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAuthType, c.AuthType)
	}

	if err := ValidateExcludedPaths(c.ExcludedPaths); err != nil {
		return err
	}

	switch c.AuthType {
	case AuthTypeSession, AuthTypeSessionExp, AuthTypeSessionDB:
		if c.SessionName == "" {
			return ErrSessionNameRequired
		}
	}

	return nil
}
