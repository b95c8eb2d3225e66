// internal/app/features/admin/handler.go
package admin

import (
	"net/http"

	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	contributionstore "github.com/openforgehq/openforge/internal/app/store/contributions"
	featurestore "github.com/openforgehq/openforge/internal/app/store/features"
	ideastore "github.com/openforgehq/openforge/internal/app/store/ideas"
	votestore "github.com/openforgehq/openforge/internal/app/store/votes"
	"github.com/openforgehq/openforge/internal/app/system/moderation"

	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the moderation console: review queues for ideas,
// contributions, and feature suggestions, plus the approve / reject /
// delete actions. All routes are behind auth.RequireAdmin.
type Handler struct {
	Ideas         *ideastore.Store
	Contributions *contributionstore.Store
	Features      *featurestore.Store
	Votes         *votestore.Store
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Ideas:         ideastore.New(db),
		Contributions: contributionstore.New(db),
		Features:      featurestore.New(db),
		Votes:         votestore.New(db),
		ErrLog:        errLog,
		Log:           logger,
	}
}

// statusFilter reads ?status= from the request. The review queues
// default to pending, the natural working set; "all" clears the
// filter. An unparseable value falls back to pending rather than
// erroring out the whole page.
func statusFilter(r *http.Request) (moderation.Status, string) {
	raw := query.Get(r, "status")
	if raw == "" {
		return moderation.Pending, string(moderation.Pending)
	}
	st, err := moderation.ParseFilter(raw)
	if err != nil {
		return moderation.Pending, string(moderation.Pending)
	}
	if st == "" {
		return "", moderation.FilterAll
	}
	return st, string(st)
}
