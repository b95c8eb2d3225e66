// internal/app/features/ideas/list.go
package ideas

import (
	"context"
	"net/http"
	"strings"

	"github.com/openforgehq/openforge/internal/app/system/authz"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ideaVM is one idea row on the board with its computed vote state.
type ideaVM struct {
	models.Idea
	VoteCount int64
	HasVoted  bool
}

type listData struct {
	viewdata.BaseVM
	Ideas     []ideaVM
	Query     string
	Submitted bool
}

// List handles GET /ideas. Only approved ideas are shown; vote counts
// are computed per request so they can never drift from the vote
// documents.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ideas, err := h.Ideas.List(ctx, moderation.Approved)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching ideas", err, "A database error occurred.", "/")
		return
	}

	// Optional client search box, matched against the folded title.
	q := query.Search(r, "q")
	if q != "" {
		folded := text.Fold(q)
		filtered := ideas[:0]
		for _, idea := range ideas {
			if strings.Contains(idea.TitleCI, folded) {
				filtered = append(filtered, idea)
			}
		}
		ideas = filtered
	}

	ids := make([]primitive.ObjectID, len(ideas))
	for i, idea := range ideas {
		ids[i] = idea.ID
	}
	counts, err := h.Votes.CountByIdeas(ctx, ids)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error counting votes", err, "A database error occurred.", "/")
		return
	}

	voted := map[primitive.ObjectID]bool{}
	if _, _, userID, ok := authz.UserCtx(r); ok {
		votedIDs, err := h.Votes.ListByUser(ctx, userID)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "database error fetching user votes", err, "A database error occurred.", "/")
			return
		}
		for _, id := range votedIDs {
			voted[id] = true
		}
	}

	vms := make([]ideaVM, len(ideas))
	for i, idea := range ideas {
		vms[i] = ideaVM{
			Idea:      idea,
			VoteCount: counts[idea.ID],
			HasVoted:  voted[idea.ID],
		}
	}

	data := listData{
		BaseVM:    viewdata.NewBaseVM(r, "Project Ideas", "/"),
		Ideas:     vms,
		Query:     q,
		Submitted: query.Get(r, "submitted") == "1",
	}
	templates.Render(w, r, "ideas_list", data)
}
