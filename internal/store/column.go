package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"basegraph.app/taskhook/core/db/sqlc"
	"basegraph.app/taskhook/internal/model"
)

type columnStore struct {
	queries *sqlc.Queries
}

func newColumnStore(queries *sqlc.Queries) ColumnStore {
	return &columnStore{queries: queries}
}

func (s *columnStore) GetDefaultByProject(ctx context.Context, projectID int64) (*model.Column, error) {
	row, err := s.queries.GetDefaultColumnByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.Column{
		ID:        row.ID,
		ProjectID: row.ProjectID,
		Name:      row.Name,
		Position:  row.Position,
		IsDefault: row.IsDefault,
		CreatedAt: row.CreatedAt,
	}, nil
}
