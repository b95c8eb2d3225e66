// internal/app/features/ideas/vote.go
package ideas

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	ideastore "github.com/openforgehq/openforge/internal/app/store/ideas"
	"github.com/openforgehq/openforge/internal/app/system/authz"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// voteVM backs the vote-controls snippet swapped in by HTMX.
type voteVM struct {
	IdeaID    string
	VoteCount int64
	HasVoted  bool
	CSRFToken string
}

// Vote handles POST /ideas/{id}/vote. Voting is idempotent: a second
// vote by the same user changes nothing.
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	h.setVote(w, r, true)
}

// Unvote handles POST /ideas/{id}/unvote.
func (h *Handler) Unvote(w http.ResponseWriter, r *http.Request) {
	h.setVote(w, r, false)
}

func (h *Handler) setVote(w http.ResponseWriter, r *http.Request, add bool) {
	ideaID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		h.ErrLog.LogBadRequest(w, r, "invalid idea id", err, "That idea doesn't exist.", "/ideas")
		return
	}

	// RequireSignedIn guarantees a user is present.
	_, _, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	idea, err := h.Ideas.GetByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, ideastore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That idea doesn't exist or has been removed.")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error fetching idea for vote", err, "A database error occurred.", "/ideas")
		return
	}
	if idea.Status != string(moderation.Approved) {
		uierrors.RenderNotFound(w, r, "That idea doesn't exist or has been removed.")
		return
	}

	if add {
		err = h.Votes.Add(ctx, ideaID, userID)
	} else {
		err = h.Votes.Remove(ctx, ideaID, userID)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error recording vote", err, "A database error occurred.", "/ideas")
		return
	}

	// HTMX gets the refreshed controls; plain forms bounce back to the board.
	if r.Header.Get("HX-Request") == "true" {
		count, err := h.Votes.Count(ctx, ideaID)
		if err != nil {
			h.ErrLog.HTMXLogServerError(w, r, "database error counting votes", err, "A database error occurred.", "/ideas")
			return
		}
		templates.RenderSnippet(w, "idea_vote_controls", voteVM{
			IdeaID:    ideaID.Hex(),
			VoteCount: count,
			HasVoted:  add,
			CSRFToken: csrf.Token(r),
		})
		return
	}
	http.Redirect(w, r, "/ideas", http.StatusSeeOther)
}
