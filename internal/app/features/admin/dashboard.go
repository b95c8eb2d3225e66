// internal/app/features/admin/dashboard.go
package admin

import (
	"context"
	"net/http"

	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"

	"github.com/dalemusser/waffle/pantry/templates"
)

type dashboardData struct {
	viewdata.BaseVM
	PendingIdeas         int64
	PendingContributions int64
	PendingFeatures      int64
}

// Dashboard handles GET /admin: the pending counts across all three
// review queues.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ideas, err := h.Ideas.Count(ctx, moderation.Pending)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error counting pending ideas", err, "A database error occurred.", "/")
		return
	}
	contributions, err := h.Contributions.Count(ctx, moderation.Pending)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error counting pending contributions", err, "A database error occurred.", "/")
		return
	}
	features, err := h.Features.Count(ctx, moderation.Pending)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error counting pending features", err, "A database error occurred.", "/")
		return
	}

	data := dashboardData{
		BaseVM:               viewdata.NewBaseVM(r, "Moderation", "/"),
		PendingIdeas:         ideas,
		PendingContributions: contributions,
		PendingFeatures:      features,
	}
	templates.Render(w, r, "admin_dashboard", data)
}
