package model

import "time"

// Column is a board column. IsDefault marks the project's terminal
// ("done") column; it is the only signal used to decide where completed
// tasks go.
type Column struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Name      string    `json:"name"`
	Position  int32     `json:"position"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
