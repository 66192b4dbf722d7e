package authgate

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// SchemeBasic is the Authorization scheme handled by [BasicAuth].
const SchemeBasic = "Basic"

// SchemeToken extracts the credential token that follows the given scheme
// name in an Authorization header value. The header is split on its first
// space; the part before the space must equal scheme exactly. The remainder
// is returned verbatim, trailing whitespace included. An empty header, an
// empty scheme, a missing space, or a scheme mismatch is a miss.
func SchemeToken(header, scheme string) (string, bool) {
	if header == "" || scheme == "" {
		return "", false
	}

	name, rest, found := strings.Cut(header, " ")
	if !found || name != scheme {
		return "", false
	}

	return rest, true
}

// DecodeBase64 decodes a standard-alphabet base64 token into text. Invalid
// base64 and byte sequences that are not valid UTF-8 after decoding are
// misses, never errors.
func DecodeBase64(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(raw) {
		return "", false
	}

	return string(raw), true
}

// SplitCredentials splits decoded Basic credentials into email and password.
// Surrounding whitespace is trimmed first; the remainder must be exactly two
// non-empty, colon-free segments separated by a single ':'. Anything else
// (no colon, an extra colon, an empty segment) is a miss.
func SplitCredentials(decoded string) (email, pass string, ok bool) {
	decoded = strings.TrimSpace(decoded)
	if decoded == "" {
		return "", "", false
	}

	email, pass, found := strings.Cut(decoded, ":")
	if !found || email == "" || pass == "" || strings.Contains(pass, ":") {
		return "", "", false
	}

	return email, pass, true
}
