// internal/app/features/projects/handler.go
package projects

import (
	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	contributionstore "github.com/openforgehq/openforge/internal/app/store/contributions"
	featurestore "github.com/openforgehq/openforge/internal/app/store/features"
	projectstore "github.com/openforgehq/openforge/internal/app/store/projects"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the project catalog and the per-project detail page,
// which aggregates the project's approved contributions and feature
// suggestions.
type Handler struct {
	Projects      *projectstore.Store
	Contributions *contributionstore.Store
	Features      *featurestore.Store
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Projects:      projectstore.New(db),
		Contributions: contributionstore.New(db),
		Features:      featurestore.New(db),
		ErrLog:        errLog,
		Log:           logger,
	}
}
