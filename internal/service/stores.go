package service

import (
	"basegraph.app/taskhook/internal/store"
)

// StoreProvider exposes only the stores webhook automation touches.
// *store.Stores satisfies it.
type StoreProvider interface {
	Tasks() store.TaskStore
	Columns() store.ColumnStore
	Comments() store.CommentStore
}
