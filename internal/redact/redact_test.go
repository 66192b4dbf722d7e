package redact

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	fields := []string{"email", "password"}

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "redacts listed fields",
			message: "name=alice;email=alice@example.com;password=pw;job=dev;",
			want:    "name=alice;email=***;password=***;job=dev;",
		},
		{
			name:    "no listed fields",
			message: "job=dev;team=infra;",
			want:    "job=dev;team=infra;",
		},
		{
			name:    "empty message",
			message: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filter(fields, "***", tt.message, ";"); got != tt.want {
				t.Fatalf("Filter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterNoFields(t *testing.T) {
	msg := "email=a@b.c;"
	if got := Filter(nil, "***", msg, ";"); got != msg {
		t.Fatalf("Filter(nil fields) = %q, want input unchanged", got)
	}
}

func TestMap(t *testing.T) {
	in := map[string]string{
		"email":  "alice@example.com",
		"path":   "/api/v1/users",
		"reason": "wrong password",
	}

	got := Map(DefaultFields, DefaultRedaction, in)

	want := map[string]string{
		"email":  "***",
		"path":   "/api/v1/users",
		"reason": "wrong password",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Map() = %v, want %v", got, want)
	}

	// The input map is never mutated.
	if in["email"] != "alice@example.com" {
		t.Fatal("Map mutated its input")
	}
}

func TestMapEmpty(t *testing.T) {
	if got := Map(DefaultFields, DefaultRedaction, nil); got != nil {
		t.Fatalf("Map(nil) = %v, want nil", got)
	}
}
