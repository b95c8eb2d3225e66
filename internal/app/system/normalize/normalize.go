// Package normalize holds small canonicalization helpers applied to
// user input before it is stored or compared. Keeping them in one
// place means the submission forms, the sign-in upsert, and the admin
// allowlist all agree on what "the same email" means.
package normalize

import "strings"

// Email lowercases and trims an email address. Empty or whitespace-only
// input normalizes to "".
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Handle canonicalizes a GitHub or LinkedIn username: trimmed,
// lowercased, and with a leading "@" stripped.
func Handle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimPrefix(s, "@")
}

// Mobile strips spaces and common separator characters from a phone
// number, preserving a leading "+".
func Mobile(s string) string {
	s = strings.TrimSpace(s)
	var b strings.Builder
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
