// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	ideastore "github.com/openforgehq/openforge/internal/app/store/ideas"
	votestore "github.com/openforgehq/openforge/internal/app/store/votes"
	"github.com/openforgehq/openforge/internal/app/system/tasks"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// sweeper runs the periodic maintenance jobs; Shutdown stops it.
var sweeper *tasks.Runner

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// OpenForge uses it to start the background task runner, currently a
// single job: sweeping votes whose idea has been deleted out from under
// them (the delete-time cascade is best effort).
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	sweeper = tasks.NewRunner(logger)
	sweeper.Add(tasks.OrphanedVoteSweepJob(
		votestore.New(deps.MongoDatabase),
		ideastore.New(deps.MongoDatabase),
		logger))

	// The runner owns its own context; the startup ctx only covers
	// startup.
	sweeper.Start(context.Background())
	return nil
}
