package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by Hash for an empty plaintext.
var ErrEmptyPassword = errors.New("password must not be empty")

// Bcrypt hashes and verifies passwords with golang.org/x/crypto/bcrypt.
// Instances are configured once and are safe for concurrent use.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost. A cost of zero selects
// bcrypt.DefaultCost; out-of-range costs are rejected.
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Bcrypt{cost: cost}, nil
}

// Hash returns the bcrypt hash of plain. The result embeds the salt and
// cost, so Verify needs no extra parameters.
func (b *Bcrypt) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	raw, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Verify reports whether plain matches hash. Malformed hashes and mismatches
// both report false; verification never returns an error to the caller.
func (b *Bcrypt) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
