package model

import "time"

type CommentSource string

const (
	CommentSourceGitHub CommentSource = "github"
)

type Comment struct {
	ID        int64          `json:"id"`
	TaskID    int64          `json:"task_id"`
	AuthorID  int64          `json:"author_id"`
	Body      string         `json:"body"`
	Source    *CommentSource `json:"source,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
