package store

import (
	"context"

	"basegraph.app/taskhook/core/db/sqlc"
	"basegraph.app/taskhook/internal/model"
)

type commentStore struct {
	queries *sqlc.Queries
}

func newCommentStore(queries *sqlc.Queries) CommentStore {
	return &commentStore{queries: queries}
}

func (s *commentStore) Create(ctx context.Context, comment *model.Comment) error {
	var source *string
	if comment.Source != nil {
		source = (*string)(comment.Source)
	}

	row, err := s.queries.CreateTaskComment(ctx, sqlc.CreateTaskCommentParams{
		ID:       comment.ID,
		TaskID:   comment.TaskID,
		AuthorID: comment.AuthorID,
		Body:     comment.Body,
		Source:   source,
	})
	if err != nil {
		return err
	}
	*comment = *toCommentModel(row)
	return nil
}

func toCommentModel(row sqlc.TaskComment) *model.Comment {
	c := &model.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		AuthorID:  row.AuthorID,
		Body:      row.Body,
		CreatedAt: row.CreatedAt,
	}
	if row.Source != nil {
		src := model.CommentSource(*row.Source)
		c.Source = &src
	}
	return c
}
