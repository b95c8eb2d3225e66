// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/openforgehq/openforge/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// Serve handles GET /logout.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		// The cookie may already be gone; nothing actionable.
		h.Log.Warn("logout: clear session", zap.Error(err))
	}

	// HTMX gets a client-side navigation home; everyone else a plain
	// redirect.
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
