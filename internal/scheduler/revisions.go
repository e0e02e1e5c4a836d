package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	revisionPruneJobName = "revision_prune"
	revisionPruneTimeout = time.Minute
)

// Pruner deletes all but the newest keep revisions of a kind.
type Pruner interface {
	Prune(ctx context.Context, kind string, keep int) (int64, error)
}

// RegisterRevisionPruning schedules pruning of kind revisions beyond keep.
func RegisterRevisionPruning(s *Service, pruner Pruner, kind, cronExpr string, keep int) error {
	if pruner == nil {
		return fmt.Errorf("revision pruning requires a pruner")
	}
	if keep < 1 {
		return fmt.Errorf("revision pruning keep must be at least 1, got %d", keep)
	}

	jobLogger := log.With().
		Str("component", "revision_prune_job").
		Str("kind", kind).
		Int("keep", keep).
		Logger()

	_, err := s.AddJob(revisionPruneJobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), revisionPruneTimeout)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)
		PruneRevisions(ctx, pruner, kind, keep)
	})
	return err
}

// PruneRevisions runs one prune pass, logging rather than returning failures.
func PruneRevisions(ctx context.Context, pruner Pruner, kind string, keep int) int64 {
	logger := log.Ctx(ctx)
	n, err := pruner.Prune(ctx, kind, keep)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to prune revisions")
		return 0
	}
	if n > 0 {
		logger.Info().Int64("deleted", n).Msg("Pruned old revisions")
	}
	return n
}
