// internal/app/features/admin/ideas.go
package admin

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	ideastore "github.com/openforgehq/openforge/internal/app/store/ideas"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ideaListData struct {
	viewdata.BaseVM
	Ideas  []models.Idea
	Filter string
}

// ListIdeas handles GET /admin/ideas. Defaults to the pending queue;
// ?status=approved|rejected|all shows the rest.
func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	status, filterLabel := statusFilter(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ideas, err := h.Ideas.List(ctx, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching ideas for review", err, "A database error occurred.", "/admin")
		return
	}

	data := ideaListData{
		BaseVM: viewdata.NewBaseVM(r, "Review Ideas", "/admin"),
		Ideas:  ideas,
		Filter: filterLabel,
	}
	templates.Render(w, r, "admin_ideas", data)
}

// ApproveIdea handles POST /admin/ideas/{id}/approve.
func (h *Handler) ApproveIdea(w http.ResponseWriter, r *http.Request) {
	h.setIdeaStatus(w, r, moderation.Approved)
}

// RejectIdea handles POST /admin/ideas/{id}/reject.
func (h *Handler) RejectIdea(w http.ResponseWriter, r *http.Request) {
	h.setIdeaStatus(w, r, moderation.Rejected)
}

func (h *Handler) setIdeaStatus(w http.ResponseWriter, r *http.Request, to moderation.Status) {
	ideaID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid idea id", err, "That idea doesn't exist.", "/admin/ideas")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Ideas.SetStatus(ctx, ideaID, to); err != nil {
		switch {
		case errors.Is(err, ideastore.ErrNotFound):
			uierrors.RenderNotFound(w, r, "That idea doesn't exist.")
		case errors.Is(err, moderation.ErrIllegalTransition):
			h.ErrLog.LogBadRequest(w, r, "illegal idea status transition", err,
				"This idea has already been reviewed and can't be changed.", "/admin/ideas")
		default:
			h.ErrLog.LogServerError(w, r, "database error updating idea status", err, "A database error occurred.", "/admin/ideas")
		}
		return
	}

	h.Log.Info("idea reviewed",
		zap.String("idea_id", ideaID.Hex()),
		zap.String("status", string(to)))

	http.Redirect(w, r, "/admin/ideas", http.StatusSeeOther)
}

// DeleteIdea handles POST /admin/ideas/{id}/delete. The idea's votes
// are deleted in the same request so they never outlive the idea.
// Deleting an already-deleted idea is a silent no-op.
func (h *Handler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	ideaID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid idea id", err, "That idea doesn't exist.", "/admin/ideas")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Ideas.Delete(ctx, ideaID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error deleting idea", err, "A database error occurred.", "/admin/ideas")
		return
	}

	votesRemoved, err := h.Votes.DeleteByIdea(ctx, ideaID)
	if err != nil {
		// The idea is gone; the orphan sweep will catch these votes.
		h.Log.Warn("cascade vote delete failed",
			zap.String("idea_id", ideaID.Hex()),
			zap.Error(err))
	}

	if deleted > 0 {
		h.Log.Info("idea deleted",
			zap.String("idea_id", ideaID.Hex()),
			zap.Int64("votes_removed", votesRemoved))
	}

	http.Redirect(w, r, "/admin/ideas", http.StatusSeeOther)
}
