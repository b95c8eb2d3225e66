// internal/app/system/authz/allowlist.go
package authz

import (
	"strings"

	"github.com/openforgehq/openforge/internal/app/system/normalize"
)

// Allowlist is the static set of admin email addresses. Membership is
// the only thing that grants the admin capability; there is no
// per-resource authorization beyond it.
type Allowlist map[string]struct{}

// ParseAllowlist builds an Allowlist from a comma-separated config
// value. Entries are normalized (trimmed, lowercased); blanks are
// dropped.
func ParseAllowlist(csv string) Allowlist {
	al := make(Allowlist)
	for _, part := range strings.Split(csv, ",") {
		if email := normalize.Email(part); email != "" {
			al[email] = struct{}{}
		}
	}
	return al
}

// Contains reports whether email is on the allowlist,
// case-insensitively.
func (al Allowlist) Contains(email string) bool {
	_, ok := al[normalize.Email(email)]
	return ok
}

// Emails returns the allowlisted addresses (order unspecified).
// Used for startup logging.
func (al Allowlist) Emails() []string {
	out := make([]string, 0, len(al))
	for e := range al {
		out = append(out, e)
	}
	return out
}
