package cron

import (
	"context"
	"log/slog"
	"time"
)

const cleanupInterval = 24 * time.Hour

// Cleaner deletes rows older than a retention window and reports how many went.
type Cleaner func(ctx context.Context, days int) (int64, error)

// Task is one retention job.
type Task struct {
	Name string
	Days int
	Run  Cleaner
}

// RunOnce executes every task, logging failures without stopping the others.
// Tasks with a non-positive retention are skipped.
func RunOnce(ctx context.Context, tasks []Task) {
	for _, t := range tasks {
		if t.Days <= 0 {
			continue
		}
		n, err := t.Run(ctx, t.Days)
		if err != nil {
			slog.Error("retention cleanup failed", "task", t.Name, "error", err)
			continue
		}
		slog.Info("retention cleanup completed", "task", t.Name, "deleted", n, "retention_days", t.Days)
	}
}

// StartCleanupTask runs the tasks immediately and then every 24 hours until
// ctx is cancelled.
func StartCleanupTask(ctx context.Context, tasks []Task) {
	go func() {
		slog.Info("starting background cleanup task", "tasks", len(tasks))
		RunOnce(ctx, tasks)

		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				RunOnce(ctx, tasks)
			}
		}
	}()
}
