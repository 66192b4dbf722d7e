// Package redact obfuscates personally identifiable fields before they reach
// audit output.
package redact

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultFields are the metadata keys treated as personally identifiable.
var DefaultFields = []string{"name", "email", "phone", "ssn", "password"}

// DefaultRedaction replaces redacted values.
const DefaultRedaction = "***"

// Filter obfuscates the values of the given fields inside a
// "field=value<separator>field=value" style message. Field names are
// matched literally and case-sensitively.
func Filter(fields []string, redaction, message, separator string) string {
	if len(fields) == 0 || message == "" {
		return message
	}

	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = regexp.QuoteMeta(f)
	}
	pattern := fmt.Sprintf(`(%s)=[^%s]*`, strings.Join(escaped, "|"), regexp.QuoteMeta(separator))

	re, err := regexp.Compile(pattern)
	if err != nil {
		return message
	}
	return re.ReplaceAllString(message, "${1}="+redaction)
}

// Map returns a copy of metadata with the values of the listed fields
// replaced by redaction. The input map is never mutated.
func Map(fields []string, redaction string, metadata map[string]string) map[string]string {
	if len(metadata) == 0 {
		return metadata
	}

	out := make(map[string]string, len(metadata))
	for k, v := range metadata {
		out[k] = v
	}
	for _, f := range fields {
		if _, ok := out[f]; ok {
			out[f] = redaction
		}
	}
	return out
}
