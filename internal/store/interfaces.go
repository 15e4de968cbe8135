package store

import (
	"context"
	"errors"
	"time"

	"basegraph.app/taskhook/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// TaskStore defines the task operations webhook automation needs.
type TaskStore interface {
	GetByKey(ctx context.Context, key string) (*model.Task, error)
	// MarkDone moves the task into columnID with status DONE. It reports
	// false without writing when the task is already in that column.
	MarkDone(ctx context.Context, taskID int64, columnID int64, completedAt time.Time) (bool, error)
}

// ColumnStore defines the contract for board column lookups
type ColumnStore interface {
	// GetDefaultByProject returns the project's terminal column or ErrNotFound.
	GetDefaultByProject(ctx context.Context, projectID int64) (*model.Column, error)
}

// CommentStore defines the contract for task comment writes
type CommentStore interface {
	Create(ctx context.Context, comment *model.Comment) error
}
