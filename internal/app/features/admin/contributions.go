// internal/app/features/admin/contributions.go
package admin

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	contributionstore "github.com/openforgehq/openforge/internal/app/store/contributions"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type contributionListData struct {
	viewdata.BaseVM
	Contributions []models.ProjectContribution
	Filter        string
}

// ListContributions handles GET /admin/contributions.
func (h *Handler) ListContributions(w http.ResponseWriter, r *http.Request) {
	status, filterLabel := statusFilter(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	contributions, err := h.Contributions.List(ctx, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching contributions for review", err, "A database error occurred.", "/admin")
		return
	}

	data := contributionListData{
		BaseVM:        viewdata.NewBaseVM(r, "Review Contributions", "/admin"),
		Contributions: contributions,
		Filter:        filterLabel,
	}
	templates.Render(w, r, "admin_contributions", data)
}

// ApproveContribution handles POST /admin/contributions/{id}/approve.
func (h *Handler) ApproveContribution(w http.ResponseWriter, r *http.Request) {
	h.setContributionStatus(w, r, moderation.Approved)
}

// RejectContribution handles POST /admin/contributions/{id}/reject.
func (h *Handler) RejectContribution(w http.ResponseWriter, r *http.Request) {
	h.setContributionStatus(w, r, moderation.Rejected)
}

func (h *Handler) setContributionStatus(w http.ResponseWriter, r *http.Request, to moderation.Status) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid contribution id", err, "That contribution doesn't exist.", "/admin/contributions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Contributions.SetStatus(ctx, id, to); err != nil {
		switch {
		case errors.Is(err, contributionstore.ErrNotFound):
			uierrors.RenderNotFound(w, r, "That contribution doesn't exist.")
		case errors.Is(err, moderation.ErrIllegalTransition):
			h.ErrLog.LogBadRequest(w, r, "illegal contribution status transition", err,
				"This contribution has already been reviewed and can't be changed.", "/admin/contributions")
		default:
			h.ErrLog.LogServerError(w, r, "database error updating contribution status", err, "A database error occurred.", "/admin/contributions")
		}
		return
	}

	h.Log.Info("contribution reviewed",
		zap.String("contribution_id", id.Hex()),
		zap.String("status", string(to)))

	http.Redirect(w, r, "/admin/contributions", http.StatusSeeOther)
}

// DeleteContribution handles POST /admin/contributions/{id}/delete.
func (h *Handler) DeleteContribution(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid contribution id", err, "That contribution doesn't exist.", "/admin/contributions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Contributions.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting contribution", err, "A database error occurred.", "/admin/contributions")
		return
	}
	if deleted > 0 {
		h.Log.Info("contribution deleted", zap.String("contribution_id", id.Hex()))
	}

	http.Redirect(w, r, "/admin/contributions", http.StatusSeeOther)
}
