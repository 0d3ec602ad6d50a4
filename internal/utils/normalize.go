package utils

import "strings"

// NormalizeOptionalString maps empty or whitespace-only strings to nil so
// optional fields persist as NULL rather than "". A nil input stays nil.
func NormalizeOptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
