// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"

	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	contributionstore "github.com/openforgehq/openforge/internal/app/store/contributions"
	ideastore "github.com/openforgehq/openforge/internal/app/store/ideas"
	projectstore "github.com/openforgehq/openforge/internal/app/store/projects"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/app/system/viewdata"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the landing page.
type Handler struct {
	Projects      *projectstore.Store
	Ideas         *ideastore.Store
	Contributions *contributionstore.Store
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Projects:      projectstore.New(db),
		Ideas:         ideastore.New(db),
		Contributions: contributionstore.New(db),
		ErrLog:        errLog,
		Log:           logger,
	}
}

type homeData struct {
	viewdata.BaseVM
	ProjectCount      int64
	IdeaCount         int64
	ContributionCount int64
}

// Serve handles GET /.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := homeData{BaseVM: viewdata.NewBaseVM(r, "Home", "/")}

	// The counts are decoration; a failed count renders as zero rather
	// than turning the landing page into an error page.
	var err error
	if data.ProjectCount, err = h.Projects.Count(ctx); err != nil {
		h.Log.Warn("home: count projects", zap.Error(err))
	}
	if data.IdeaCount, err = h.Ideas.Count(ctx, moderation.Approved); err != nil {
		h.Log.Warn("home: count ideas", zap.Error(err))
	}
	if data.ContributionCount, err = h.Contributions.Count(ctx, moderation.Approved); err != nil {
		h.Log.Warn("home: count contributions", zap.Error(err))
	}

	templates.Render(w, r, "home", data)
}
