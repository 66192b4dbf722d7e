package authgate

import (
	"context"
	"net/http"
)

// BasicAuth resolves users from HTTP Basic credentials: the Authorization
// token is base64-decoded, split into email and password, and checked
// against the user store with the hashing collaborator.
type BasicAuth struct {
	Auth
	users  UserStore
	hasher Hasher
}

// NewBasicAuth creates a [BasicAuth] over the given collaborators.
func NewBasicAuth(users UserStore, hasher Hasher, sessionName string) *BasicAuth {
	return &BasicAuth{
		Auth:   Auth{sessionName: sessionName},
		users:  users,
		hasher: hasher,
	}
}

// CurrentUser decodes the Basic credential and returns the first user whose
// password verifies. Users that share the email but fail verification are
// skipped, not rejected outright. Every failure along the pipeline (missing
// header, wrong scheme, invalid base64, malformed split, store error) is a
// soft miss resolving to nil.
func (b *BasicAuth) CurrentUser(ctx context.Context, r *http.Request) *User {
	header, ok := b.AuthorizationHeader(r)
	if !ok {
		return nil
	}

	token, ok := SchemeToken(header, SchemeBasic)
	if !ok {
		return nil
	}
	decoded, ok := DecodeBase64(token)
	if !ok {
		return nil
	}
	email, pass, ok := SplitCredentials(decoded)
	if !ok {
		return nil
	}

	users, err := b.users.Search(ctx, map[string]string{"email": email})
	if err != nil {
		return nil
	}

	for i := range users {
		if b.hasher.Verify(users[i].PasswordHash, pass) {
			return &users[i]
		}
	}

	return nil
}
