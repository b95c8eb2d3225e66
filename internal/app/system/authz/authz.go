// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/openforgehq/openforge/internal/app/system/auth"
)

// UserCtx returns the user's role (lowercased), name, external identity
// id, and a found flag. If no user is present in context it returns
// "visitor", "", "", false, so callers can trust that ok=true means an
// authenticated user.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}

// IsAdmin reports whether the current request's user carries the admin
// capability. The capability is resolved once at sign-in from the
// static allowlist and cached on the session user.
func IsAdmin(r *http.Request) bool {
	user, ok := auth.CurrentUser(r)
	return ok && user.IsAdmin
}

// CurrentEmail returns the signed-in user's email, or "".
func CurrentEmail(r *http.Request) string {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return ""
	}
	return user.Email
}
