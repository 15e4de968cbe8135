package model

import "time"

// TaskStatus mirrors the status column of the board application.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

type Task struct {
	ID          int64      `json:"id"`
	Key         string     `json:"key"` // e.g. "PROJ-12"
	ProjectID   int64      `json:"project_id"`
	ColumnID    int64      `json:"column_id"`
	Title       string     `json:"title"`
	Status      TaskStatus `json:"status"`
	CreatorID   int64      `json:"creator_id"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) InColumn(columnID int64) bool {
	return t.ColumnID == columnID
}
