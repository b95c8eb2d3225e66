// internal/app/features/suggestions/handler.go
package suggestions

import (
	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	featurestore "github.com/openforgehq/openforge/internal/app/store/features"
	projectstore "github.com/openforgehq/openforge/internal/app/store/projects"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the feature-suggestion form: propose an enhancement
// to one of the hosted projects. Suggestions enter moderation as
// pending and appear on the project page once approved.
type Handler struct {
	Features *featurestore.Store
	Projects *projectstore.Store
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Features: featurestore.New(db),
		Projects: projectstore.New(db),
		ErrLog:   errLog,
		Log:      logger,
	}
}
