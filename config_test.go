package authgate

import (
	"errors"
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantType     string
		wantName     string
		wantDuration time.Duration
	}{
		{
			name:     "defaults",
			env:      map[string]string{},
			wantType: AuthTypeNone,
			wantName: DefaultSessionName,
		},
		{
			name: "full set",
			env: map[string]string{
				EnvAuthType:        "session_exp_auth",
				EnvSessionName:     "sid",
				EnvSessionDuration: "60",
			},
			wantType:     AuthTypeSessionExp,
			wantName:     "sid",
			wantDuration: time.Minute,
		},
		{
			name:     "malformed duration degrades to zero",
			env:      map[string]string{EnvSessionDuration: "not-a-number"},
			wantType: AuthTypeNone,
			wantName: DefaultSessionName,
		},
		{
			name:         "negative duration kept",
			env:          map[string]string{EnvSessionDuration: "-5"},
			wantType:     AuthTypeNone,
			wantName:     DefaultSessionName,
			wantDuration: -5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvAuthType, EnvSessionName, EnvSessionDuration} {
				t.Setenv(key, tt.env[key])
			}

			cfg := ConfigFromEnv()
			if cfg.AuthType != tt.wantType {
				t.Errorf("AuthType = %q, want %q", cfg.AuthType, tt.wantType)
			}
			if cfg.SessionName != tt.wantName {
				t.Errorf("SessionName = %q, want %q", cfg.SessionName, tt.wantName)
			}
			if cfg.SessionDuration != tt.wantDuration {
				t.Errorf("SessionDuration = %v, want %v", cfg.SessionDuration, tt.wantDuration)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "default valid", mutate: func(c *Config) {}},
		{
			name:   "session db type valid",
			mutate: func(c *Config) { c.AuthType = AuthTypeSessionDB },
		},
		{
			name:    "unknown auth type",
			mutate:  func(c *Config) { c.AuthType = "oauth" },
			wantErr: ErrUnknownAuthType,
		},
		{
			name:    "blank excluded entry",
			mutate:  func(c *Config) { c.ExcludedPaths = []string{"/ok/", "  "} },
			wantErr: ErrExcludedPathEmpty,
		},
		{
			name: "session variant without cookie name",
			mutate: func(c *Config) {
				c.AuthType = AuthTypeSession
				c.SessionName = ""
			},
			wantErr: ErrSessionNameRequired,
		},
		{
			name: "basic variant tolerates empty cookie name",
			mutate: func(c *Config) {
				c.AuthType = AuthTypeBasic
				c.SessionName = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
