// internal/app/system/tasks/jobs.go
package tasks

import (
	"context"
	"time"

	ideastore "github.com/openforgehq/openforge/internal/app/store/ideas"
	votestore "github.com/openforgehq/openforge/internal/app/store/votes"
	"go.uber.org/zap"
)

// OrphanedVoteSweepJob removes votes whose idea no longer exists.
// Cascade deletion handles the normal path; this sweep catches votes
// written before cascades existed or left behind by a crash between
// the idea delete and the vote delete.
func OrphanedVoteSweepJob(votes *votestore.Store, ideas *ideastore.Store, logger *zap.Logger) Job {
	return Job{
		Name:     "orphaned-vote-sweep",
		Interval: time.Hour,
		Run: func(ctx context.Context) error {
			keep, err := ideas.ListIDs(ctx)
			if err != nil {
				return err
			}
			removed, err := votes.DeleteOrphaned(ctx, keep)
			if err != nil {
				return err
			}
			if removed > 0 {
				logger.Info("removed orphaned votes",
					zap.Int64("removed", removed),
					zap.Int("live_ideas", len(keep)))
			}
			return nil
		},
	}
}
