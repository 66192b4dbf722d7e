package authgate

import (
	"errors"
	"testing"
)

func TestRequireAuth(t *testing.T) {
	excluded := []string{"/api/v1/status/", "/api/v1/stats/*", "/api/v1/forbidden"}

	tests := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{name: "empty path", path: "", excluded: excluded, want: true},
		{name: "nil exclusions", path: "/api/v1/status", excluded: nil, want: true},
		{name: "empty exclusions", path: "/api/v1/status", excluded: []string{}, want: true},
		{name: "exact match", path: "/api/v1/status", excluded: excluded, want: false},
		{name: "trailing slash on path", path: "/api/v1/status/", excluded: excluded, want: false},
		{name: "deeper sub-path", path: "/api/v1/status/extended", excluded: excluded, want: false},
		{name: "entry without trailing slash", path: "/api/v1/forbidden/sub", excluded: excluded, want: false},
		{name: "wildcard prefix", path: "/api/v1/stats_daily", excluded: excluded, want: false},
		{name: "wildcard exact prefix", path: "/api/v1/stats/", excluded: excluded, want: false},
		{name: "segment boundary not crossed", path: "/api/v1/statusx", excluded: excluded, want: true},
		{name: "unrelated path", path: "/api/v1/users", excluded: excluded, want: true},
		{name: "case sensitive", path: "/API/v1/status", excluded: excluded, want: true},
		{name: "not anchored mid-path", path: "/prefix/api/v1/status", excluded: excluded, want: true},
		{name: "whitespace entry trimmed", path: "/health", excluded: []string{"  /health  "}, want: false},
		{name: "blank entries skipped", path: "/health", excluded: []string{"   ", ""}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequireAuth(tt.path, tt.excluded); got != tt.want {
				t.Fatalf("RequireAuth(%q, %v) = %v, want %v", tt.path, tt.excluded, got, tt.want)
			}
		})
	}
}

func TestRequireAuthSlashTolerance(t *testing.T) {
	excluded := []string{"/api/v1/status/", "/api/v1/users", "/api/v1/stats/*"}
	paths := []string{"/api/v1/status", "/api/v1/users", "/api/v1/stats/x", "/api/v1/other"}

	for _, p := range paths {
		if RequireAuth(p, excluded) != RequireAuth(p+"/", excluded) {
			t.Fatalf("slash tolerance broken for %q", p)
		}
	}
}

func TestValidateExcludedPaths(t *testing.T) {
	if err := ValidateExcludedPaths([]string{"/a/", "/b/*"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateExcludedPaths(nil); err != nil {
		t.Fatalf("unexpected error for nil list: %v", err)
	}

	err := ValidateExcludedPaths([]string{"/a/", "  "})
	if !errors.Is(err, ErrExcludedPathEmpty) {
		t.Fatalf("want ErrExcludedPathEmpty, got %v", err)
	}
}
