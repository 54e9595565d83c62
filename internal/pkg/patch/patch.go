package patch

import "strings"

// Text returns the trimmed value of an optional form field, or "" when the
// field was not sent.
func Text(field *string) string {
	if field == nil {
		return ""
	}
	return strings.TrimSpace(*field)
}

// Coalesce returns *ptr, or fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
