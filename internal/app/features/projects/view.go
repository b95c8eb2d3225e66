// internal/app/features/projects/view.go
package projects

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	projectstore "github.com/openforgehq/openforge/internal/app/store/projects"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type viewData struct {
	viewdata.BaseVM
	Project       models.Project
	TechStack     []string
	Contributions []models.ProjectContribution
	Features      []models.ProjectFeature
}

// View handles GET /projects/{id}. The detail page shows only the
// approved contributions and feature suggestions for the project;
// pending and rejected children stay invisible here.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	projectID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "That project doesn't exist.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	project, err := h.Projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, projectstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "That project doesn't exist.")
			return
		}
		h.ErrLog.LogServerError(w, r, "database error fetching project", err, "A database error occurred.", "/projects")
		return
	}

	contributions, err := h.Contributions.ListByProject(ctx, projectID, moderation.Approved)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching contributions", err, "A database error occurred.", "/projects")
		return
	}

	features, err := h.Features.ListByProject(ctx, projectID, moderation.Approved)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching feature suggestions", err, "A database error occurred.", "/projects")
		return
	}

	data := viewData{
		BaseVM:        viewdata.NewBaseVM(r, project.Title, "/projects"),
		Project:       project,
		TechStack:     project.TechStackList(),
		Contributions: contributions,
		Features:      features,
	}
	templates.Render(w, r, "project_view", data)
}
