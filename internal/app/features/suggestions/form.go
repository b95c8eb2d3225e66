// internal/app/features/suggestions/form.go
package suggestions

import (
	"context"
	"errors"
	"net/http"
	"strings"

	projectstore "github.com/openforgehq/openforge/internal/app/store/projects"
	"github.com/openforgehq/openforge/internal/app/system/formutil"
	"github.com/openforgehq/openforge/internal/app/system/htmlsanitize"
	"github.com/openforgehq/openforge/internal/app/system/inputval"
	"github.com/openforgehq/openforge/internal/app/system/normalize"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type formData struct {
	formutil.Base
	Projects  []models.Project
	Submitted bool

	ProjectID    string
	FeatureTitle string
	Description  string
	Rationale    string
	Name         string
	Email        string
	GitHub       string
	LinkedIn     string
	Mobile       string
}

// Form handles GET /suggestions.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := h.Projects.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching projects", err, "A database error occurred.", "/")
		return
	}

	data := formData{
		Projects:  projects,
		ProjectID: query.Get(r, "project"),
		Submitted: query.Get(r, "submitted") == "1",
	}
	formutil.SetBase(&data.Base, r, "Suggest a Feature", "/projects")
	templates.Render(w, r, "suggestion_form", data)
}

// Create handles POST /suggestions.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/suggestions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := h.Projects.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching projects", err, "A database error occurred.", "/suggestions")
		return
	}

	data := formData{
		Projects: projects,

		ProjectID:    strings.TrimSpace(r.FormValue("project_id")),
		FeatureTitle: strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		Rationale:    strings.TrimSpace(r.FormValue("rationale")),
		Name:         normalize.Name(r.FormValue("name")),
		Email:        normalize.Email(r.FormValue("email")),
		GitHub:       normalize.Handle(r.FormValue("github")),
		LinkedIn:     strings.TrimSpace(r.FormValue("linkedin")),
		Mobile:       normalize.Mobile(r.FormValue("mobile")),
	}
	formutil.SetBase(&data.Base, r, "Suggest a Feature", "/projects")

	if msg := h.validate(&data); msg != "" {
		data.SetError(msg)
		templates.Render(w, r, "suggestion_form", data)
		return
	}

	projectID, err := primitive.ObjectIDFromHex(data.ProjectID)
	if err != nil {
		data.SetError("Choose a project from the list.")
		templates.Render(w, r, "suggestion_form", data)
		return
	}

	project, err := h.Projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, projectstore.ErrNotFound) {
			data.SetError("Choose a project from the list.")
			templates.Render(w, r, "suggestion_form", data)
			return
		}
		h.ErrLog.LogServerError(w, r, "database error fetching project", err, "A database error occurred.", "/suggestions")
		return
	}

	feat := models.ProjectFeature{
		Title:       data.FeatureTitle,
		Description: htmlsanitize.Sanitize(data.Description),
		Rationale:   htmlsanitize.Sanitize(data.Rationale),
		Submitter: models.Submitter{
			Name:     data.Name,
			Email:    data.Email,
			GitHub:   data.GitHub,
			LinkedIn: data.LinkedIn,
			Mobile:   data.Mobile,
		},
		ProjectID:   project.ID,
		ProjectName: project.Title,
	}

	created, err := h.Features.Create(ctx, feat)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error creating feature suggestion", err, "A database error occurred.", "/suggestions")
		return
	}

	h.Log.Info("feature suggestion submitted",
		zap.String("feature_id", created.ID.Hex()),
		zap.String("project", created.ProjectName))

	http.Redirect(w, r, "/suggestions?submitted=1", http.StatusSeeOther)
}

func (h *Handler) validate(data *formData) string {
	switch {
	case data.ProjectID == "" || !inputval.IsValidObjectID(data.ProjectID):
		return "Choose a project from the list."
	case data.FeatureTitle == "":
		return "Title is required."
	case data.Description == "":
		return "Describe the feature you're suggesting."
	case data.Name == "":
		return "Your name is required."
	case !inputval.IsValidEmail(data.Email):
		return "A valid email address is required."
	case data.GitHub == "":
		return "Your GitHub username is required."
	case data.LinkedIn != "" && !inputval.IsValidHTTPURL(data.LinkedIn):
		return "LinkedIn must be a valid link."
	}
	return ""
}
