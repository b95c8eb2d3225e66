// internal/app/features/ideas/handler.go
package ideas

import (
	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	ideastore "github.com/openforgehq/openforge/internal/app/store/ideas"
	votestore "github.com/openforgehq/openforge/internal/app/store/votes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public idea board: browsing approved ideas,
// submitting new ones, and voting.
type Handler struct {
	Ideas  *ideastore.Store
	Votes  *votestore.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Ideas:  ideastore.New(db),
		Votes:  votestore.New(db),
		ErrLog: errLog,
		Log:    logger,
	}
}
