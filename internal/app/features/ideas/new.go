// internal/app/features/ideas/new.go
package ideas

import (
	"context"
	"net/http"
	"strings"

	"github.com/openforgehq/openforge/internal/app/system/formutil"
	"github.com/openforgehq/openforge/internal/app/system/htmlsanitize"
	"github.com/openforgehq/openforge/internal/app/system/inputval"
	"github.com/openforgehq/openforge/internal/app/system/normalize"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Categories and difficulties offered on the idea form. Free-typed
// values are rejected so the board filters stay meaningful.
var (
	ideaCategories = []string{
		"Web Development", "Mobile Development", "AI / Machine Learning",
		"Developer Tooling", "Infrastructure", "Data", "Other",
	}
	ideaDifficulties = []string{"Beginner", "Intermediate", "Advanced"}
)

type newIdeaData struct {
	formutil.Base
	Categories   []string
	Difficulties []string

	// Echoed form values on validation failure.
	IdeaTitle   string
	Problem     string
	Solution    string
	Category    string
	Difficulty  string
	LookingFor  string
	HelpContext string
	LeadProject bool
	Name        string
	Email       string
	GitHub      string
	LinkedIn    string
	Mobile      string
}

// NewForm handles GET /ideas/new.
func (h *Handler) NewForm(w http.ResponseWriter, r *http.Request) {
	data := newIdeaData{
		Categories:   ideaCategories,
		Difficulties: ideaDifficulties,
	}
	formutil.SetBase(&data.Base, r, "Submit an Idea", "/ideas")
	templates.Render(w, r, "idea_new", data)
}

// Create handles POST /ideas. New ideas always enter the moderation
// queue as pending; nothing a submitter does can make one public
// directly.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/ideas/new")
		return
	}

	data := newIdeaData{
		Categories:   ideaCategories,
		Difficulties: ideaDifficulties,

		IdeaTitle:   strings.TrimSpace(r.FormValue("title")),
		Problem:     strings.TrimSpace(r.FormValue("problem")),
		Solution:    strings.TrimSpace(r.FormValue("solution")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Difficulty:  strings.TrimSpace(r.FormValue("difficulty")),
		LookingFor:  strings.TrimSpace(r.FormValue("looking_for")),
		HelpContext: strings.TrimSpace(r.FormValue("help_context")),
		LeadProject: r.FormValue("lead_project") == "on",
		Name:        normalize.Name(r.FormValue("name")),
		Email:       normalize.Email(r.FormValue("email")),
		GitHub:      normalize.Handle(r.FormValue("github")),
		LinkedIn:    strings.TrimSpace(r.FormValue("linkedin")),
		Mobile:      normalize.Mobile(r.FormValue("mobile")),
	}
	formutil.SetBase(&data.Base, r, "Submit an Idea", "/ideas")

	if msg := h.validateNewIdea(&data); msg != "" {
		data.SetError(msg)
		templates.Render(w, r, "idea_new", data)
		return
	}

	idea := models.Idea{
		Title:       data.IdeaTitle,
		Problem:     htmlsanitize.Sanitize(data.Problem),
		Solution:    htmlsanitize.Sanitize(data.Solution),
		Category:    data.Category,
		Difficulty:  data.Difficulty,
		LookingFor:  htmlsanitize.Sanitize(data.LookingFor),
		HelpContext: htmlsanitize.Sanitize(data.HelpContext),
		LeadProject: data.LeadProject,
		Submitter: models.Submitter{
			Name:     data.Name,
			Email:    data.Email,
			GitHub:   data.GitHub,
			LinkedIn: data.LinkedIn,
			Mobile:   data.Mobile,
		},
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Ideas.Create(ctx, idea)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "database error creating idea", err, "A database error occurred.", "/ideas/new")
		return
	}

	h.Log.Info("idea submitted",
		zap.String("idea_id", created.ID.Hex()),
		zap.String("title", created.Title))

	http.Redirect(w, r, "/ideas?submitted=1", http.StatusSeeOther)
}

func (h *Handler) validateNewIdea(data *newIdeaData) string {
	switch {
	case data.IdeaTitle == "":
		return "Title is required."
	case data.Problem == "":
		return "Describe the problem your idea solves."
	case data.Solution == "":
		return "Describe your proposed solution."
	case !contains(ideaCategories, data.Category):
		return "Choose a category from the list."
	case !contains(ideaDifficulties, data.Difficulty):
		return "Choose a difficulty from the list."
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
