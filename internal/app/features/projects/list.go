// internal/app/features/projects/list.go
package projects

import (
	"context"
	"net/http"
	"strings"

	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
)

type listData struct {
	viewdata.BaseVM
	Projects []models.Project
	Query    string
}

// List handles GET /projects.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := h.Projects.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching projects", err, "A database error occurred.", "/")
		return
	}

	q := query.Search(r, "q")
	if q != "" {
		folded := text.Fold(q)
		filtered := projects[:0]
		for _, p := range projects {
			if strings.Contains(p.TitleCI, folded) {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Projects", "/"),
		Projects: projects,
		Query:    q,
	}
	templates.Render(w, r, "projects_list", data)
}
