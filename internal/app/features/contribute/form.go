// internal/app/features/contribute/form.go
package contribute

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
	"github.com/openforgehq/openforge/internal/app/system/notify"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	contributionTypes = []string{"Feature", "Bug Fix", "Enhancement", "Documentation", "Refactor"}
	experienceLevels  = []string{"Beginner", "Intermediate", "Advanced"}
)

type formData struct {
	formutil.Base
	Projects  []models.Project
	Types     []string
	Levels    []string
	Submitted bool

	ProjectID        string
	ContribTitle     string
	Description      string
	ContributionType string
	ExperienceLevel  string
	Timeline         string
	HowCanHelp       string
	PRLink           string
	Name             string
	Email            string
	GitHub           string
	LinkedIn         string
	Mobile           string
}

// Form handles GET /contribute. ?project=<id> preselects the project
// when the visitor came from a project page.
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
		Types:     contributionTypes,
		Levels:    experienceLevels,
		ProjectID: query.Get(r, "project"),
		Submitted: query.Get(r, "submitted") == "1",
	}
	formutil.SetBase(&data.Base, r, "Submit a Contribution", "/projects")
	templates.Render(w, r, "contribute_form", data)
}

// Create handles POST /contribute.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/contribute")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := h.Projects.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error fetching projects", err, "A database error occurred.", "/contribute")
		return
	}

	data := formData{
		Projects: projects,
		Types:    contributionTypes,
		Levels:   experienceLevels,

		ProjectID:        strings.TrimSpace(r.FormValue("project_id")),
		ContribTitle:     strings.TrimSpace(r.FormValue("title")),
		Description:      strings.TrimSpace(r.FormValue("description")),
		ContributionType: strings.TrimSpace(r.FormValue("contribution_type")),
		ExperienceLevel:  strings.TrimSpace(r.FormValue("experience_level")),
		Timeline:         strings.TrimSpace(r.FormValue("timeline")),
		HowCanHelp:       strings.TrimSpace(r.FormValue("how_can_help")),
		PRLink:           strings.TrimSpace(r.FormValue("pr_link")),
		Name:             normalize.Name(r.FormValue("name")),
		Email:            normalize.Email(r.FormValue("email")),
		GitHub:           normalize.Handle(r.FormValue("github")),
		LinkedIn:         strings.TrimSpace(r.FormValue("linkedin")),
		Mobile:           normalize.Mobile(r.FormValue("mobile")),
	}
	formutil.SetBase(&data.Base, r, "Submit a Contribution", "/projects")

	if msg := h.validate(&data); msg != "" {
		data.SetError(msg)
		templates.Render(w, r, "contribute_form", data)
		return
	}

	projectID, err := primitive.ObjectIDFromHex(data.ProjectID)
	if err != nil {
		data.SetError("Choose a project from the list.")
		templates.Render(w, r, "contribute_form", data)
		return
	}

	project, err := h.Projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, projectstore.ErrNotFound) {
			data.SetError("Choose a project from the list.")
			templates.Render(w, r, "contribute_form", data)
			return
		}
		h.ErrLog.LogServerError(w, r, "database error fetching project", err, "A database error occurred.", "/contribute")
		return
	}

	con := models.ProjectContribution{
		Title:            data.ContribTitle,
		Description:      htmlsanitize.Sanitize(data.Description),
		ContributionType: data.ContributionType,
		ExperienceLevel:  data.ExperienceLevel,
		Timeline:         htmlsanitize.Sanitize(data.Timeline),
		HowCanHelp:       htmlsanitize.Sanitize(data.HowCanHelp),
		PRLink:           data.PRLink,
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

	created, err := h.Contributions.Create(ctx, con)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error creating contribution", err, "A database error occurred.", "/contribute")
		return
	}

	h.Log.Info("contribution submitted",
		zap.String("contribution_id", created.ID.Hex()),
		zap.String("project", created.ProjectName))

	// Best effort; the contribution is already saved.
	h.Notify.SendAsync(notify.Submission{
		Email:            created.Submitter.Email,
		Name:             created.Submitter.Name,
		ProjectName:      created.ProjectName,
		Title:            created.Title,
		ContributionType: created.ContributionType,
	})

	http.Redirect(w, r, "/contribute?submitted=1", http.StatusSeeOther)
}

func (h *Handler) validate(data *formData) string {
	switch {
	case data.ProjectID == "" || !inputval.IsValidObjectID(data.ProjectID):
		return "Choose a project from the list."
	case data.ContribTitle == "":
		return "Title is required."
	case data.Description == "":
		return "Describe what your pull request does."
	case !contains(contributionTypes, data.ContributionType):
		return "Choose a contribution type from the list."
	case !inputval.IsValidPRLink(data.PRLink):
		return "The PR link must be a GitHub pull request URL, like https://github.com/owner/repo/pull/123."
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

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
