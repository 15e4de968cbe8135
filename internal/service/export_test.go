package service

import (
	"log/slog"
	"time"

	"basegraph.app/taskhook/internal/queue"
)

// NewTaskLinkerWithClock lets tests pin completion timestamps.
func NewTaskLinkerWithClock(stores StoreProvider, producer queue.Producer, logger *slog.Logger, now func() time.Time) TaskLinker {
	return newTaskLinker(stores, producer, logger, now)
}
