package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// DatabaseOptimizer refreshes query planner statistics on the bookmarks
// database (PRAGMA optimize on SQLite, ANALYZE on Postgres).
type DatabaseOptimizer interface {
	Optimize(ctx context.Context) error
}

// OptimizeDatabaseTask runs routine maintenance on the bookmarks database.
type OptimizeDatabaseTask struct {
	Reason string `json:"reason,omitempty"`
}

// Config returns the queue configuration for database maintenance tasks.
func (t OptimizeDatabaseTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "optimize_database",
		MaxAttempts: 3,
		Backoff:     5 * time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// OptimizeDatabaseProcessor creates a processor function for OptimizeDatabaseTask.
func OptimizeDatabaseProcessor(optimizer DatabaseOptimizer) backlite.QueueProcessor[OptimizeDatabaseTask] {
	return func(ctx context.Context, task OptimizeDatabaseTask) error {
		if optimizer == nil {
			return fmt.Errorf("database optimizer not configured")
		}

		start := time.Now()
		if err := optimizer.Optimize(ctx); err != nil {
			return fmt.Errorf("optimize database: %w", err)
		}

		reason := task.Reason
		if reason == "" {
			reason = "manual"
		}
		log.Printf("[TASK] Optimized database (%s) in %s", reason, time.Since(start).Round(time.Millisecond))
		return nil
	}
}

// NewOptimizeDatabaseQueue creates a backlite queue for database maintenance tasks.
func NewOptimizeDatabaseQueue(optimizer DatabaseOptimizer) backlite.Queue {
	return backlite.NewQueue(OptimizeDatabaseProcessor(optimizer))
}
