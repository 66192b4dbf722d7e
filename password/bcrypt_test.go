package password

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptCost(t *testing.T) {
	tests := []struct {
		name    string
		cost    int
		wantErr bool
	}{
		{name: "zero selects default", cost: 0},
		{name: "min cost", cost: bcrypt.MinCost},
		{name: "below min", cost: bcrypt.MinCost - 1, wantErr: true},
		{name: "above max", cost: bcrypt.MaxCost + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBcrypt(tt.cost)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBcrypt(%d) error = %v, wantErr %v", tt.cost, err, tt.wantErr)
			}
		})
	}
}

func TestHashAndVerify(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBcrypt() error: %v", err)
	}

	hash, err := h.Hash("correct-horse")
	if err != nil {
		t.Fatalf("Hash() error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("hash %q is not a bcrypt string", hash)
	}

	if !h.Verify(hash, "correct-horse") {
		t.Fatal("Verify should accept the original password")
	}
	if h.Verify(hash, "wrong-horse") {
		t.Fatal("Verify should reject a different password")
	}
	if h.Verify("not-a-hash", "correct-horse") {
		t.Fatal("Verify should reject a malformed hash")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBcrypt() error: %v", err)
	}

	if _, err := h.Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("Hash(\"\") error = %v, want ErrEmptyPassword", err)
	}
}

func TestHashesAreSalted(t *testing.T) {
	h, err := NewBcrypt(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBcrypt() error: %v", err)
	}

	a, _ := h.Hash("same-password")
	b, _ := h.Hash("same-password")
	if a == b {
		t.Fatal("two hashes of the same password should differ by salt")
	}
}
