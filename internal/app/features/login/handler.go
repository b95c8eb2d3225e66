// internal/app/features/login/handler.go
package login

import (
	"net/http"
	"net/url"

	"github.com/openforgehq/openforge/internal/app/system/auth"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// Handler serves the sign-in page. The only credential OpenForge
// accepts is Google, so the page is a single button plus whatever
// error the OAuth flow bounced back with.
type Handler struct {
	Log           *zap.Logger
	GoogleEnabled bool
}

func NewHandler(googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, GoogleEnabled: googleEnabled}
}

type loginData struct {
	viewdata.BaseVM
	GoogleEnabled bool
	GoogleURL     string
	ErrorMsg      string
}

// errorMessages maps the error codes the OAuth flow redirects back
// with to something a person can act on.
var errorMessages = map[string]string{
	"google_not_configured": "Sign-in is not configured on this server. Contact the site operator.",
	"google_denied":         "Google sign-in was cancelled or denied.",
	"invalid_state":         "The sign-in attempt expired. Please try again.",
	"invalid_code":          "Google did not return a sign-in code. Please try again.",
	"token_exchange":        "Could not complete sign-in with Google. Please try again.",
	"user_info":             "Could not read your Google profile. Please try again.",
	"session":               "Could not start a session. Check that cookies are enabled and try again.",
	"internal":              "Something went wrong on our end. Please try again.",
}

// Serve handles GET /login.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "/")

	// Already signed in: nothing to do here.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, ret, http.StatusSeeOther)
		return
	}

	data := loginData{
		BaseVM:        viewdata.NewBaseVM(r, "Sign in", "/"),
		GoogleEnabled: h.GoogleEnabled,
		GoogleURL:     "/auth/google?return=" + url.QueryEscape(ret),
	}
	if code := query.Get(r, "error"); code != "" {
		msg, ok := errorMessages[code]
		if !ok {
			msg = errorMessages["internal"]
		}
		data.ErrorMsg = msg
		h.Log.Debug("login page showing error", zap.String("code", code))
	}

	templates.Render(w, r, "login", data)
}
