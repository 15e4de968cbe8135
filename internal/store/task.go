package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"basegraph.app/taskhook/core/db/sqlc"
	"basegraph.app/taskhook/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) GetByKey(ctx context.Context, key string) (*model.Task, error) {
	row, err := s.queries.GetTaskByKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toTaskModel(row), nil
}

func (s *taskStore) MarkDone(ctx context.Context, taskID int64, columnID int64, completedAt time.Time) (bool, error) {
	rows, err := s.queries.MarkTaskDone(ctx, sqlc.MarkTaskDoneParams{
		ID:          taskID,
		ColumnID:    columnID,
		CompletedAt: &completedAt,
	})
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func toTaskModel(row sqlc.Task) *model.Task {
	return &model.Task{
		ID:          row.ID,
		Key:         row.Key,
		ProjectID:   row.ProjectID,
		ColumnID:    row.ColumnID,
		Title:       row.Title,
		Status:      model.TaskStatus(row.Status),
		CreatorID:   row.CreatorID,
		CompletedAt: row.CompletedAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
