package common

import "strings"

// HasAny returns true if s contains any of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// FirstNonEmpty returns the first value that is not blank, trimmed.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// IsPlaceholderKey reports whether an API key is one of the sample values
// shipped in docs and .env templates.
func IsPlaceholderKey(key string) bool {
	return HasAny(strings.ToLower(key), "your_api_key", "changeme", "<api", "xxxxxxxx")
}
