package authgate

import (
	"fmt"
	"strings"
)

// RequireAuth reports whether path needs authentication given the exclusion
// patterns in excludedPaths.
//
// It returns true when path is empty or excludedPaths is nil or empty. Each
// entry is trimmed of surrounding whitespace; empty entries are skipped. An
// entry ending in '*' matches any path carrying the prefix before the '*'.
// Any other entry has one trailing '/' stripped and then matches the path
// itself plus any deeper sub-path, so "/api/v1/status/" excludes both
// "/api/v1/status" and "/api/v1/status/extended". Matching is case-sensitive
// and anchored at the start of the path.
func RequireAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	for _, entry := range excludedPaths {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if matchExcluded(path, entry) {
			return false
		}
	}

	return true
}

func matchExcluded(path, entry string) bool {
	if strings.HasSuffix(entry, "*") {
		return strings.HasPrefix(path, entry[:len(entry)-1])
	}

	entry = strings.TrimSuffix(entry, "/")
	if path == entry || path == entry+"/" {
		return true
	}

	return strings.HasPrefix(path, entry+"/")
}

// ValidateExcludedPaths rejects exclusion lists that contain entries which
// are empty after trimming. Such entries would otherwise be skipped silently
// at request time; an all-blank pattern is a configuration defect, not a
// pattern, and is surfaced at startup.
func ValidateExcludedPaths(excludedPaths []string) error {
	for i, entry := range excludedPaths {
		if strings.TrimSpace(entry) == "" {
			return fmt.Errorf("%w: index %d", ErrExcludedPathEmpty, i)
		}
	}
	return nil
}
