// internal/app/features/contribute/handler.go
package contribute

import (
	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	contributionstore "github.com/openforgehq/openforge/internal/app/store/contributions"
	projectstore "github.com/openforgehq/openforge/internal/app/store/projects"
	"github.com/openforgehq/openforge/internal/app/system/notify"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the contribution submission form. A contribution is a
// merged or open GitHub pull request filed against one of the hosted
// projects; like everything else submitted here it enters moderation
// as pending.
type Handler struct {
	Contributions *contributionstore.Store
	Projects      *projectstore.Store
	Notify        *notify.Client
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(db *mongo.Database, notifier *notify.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Contributions: contributionstore.New(db),
		Projects:      projectstore.New(db),
		Notify:        notifier,
		ErrLog:        errLog,
		Log:           logger,
	}
}
