package service_test

import (
	"context"
	"sync"
	"time"

	"basegraph.app/taskhook/internal/model"
	"basegraph.app/taskhook/internal/queue"
	"basegraph.app/taskhook/internal/reference"
	"basegraph.app/taskhook/internal/service"
	"basegraph.app/taskhook/internal/store"
)

// mockTaskStore keeps tasks by key and applies MarkDone with the same
// conditional semantics as the SQL query.
type mockTaskStore struct {
	mu         sync.Mutex
	tasks      map[string]*model.Task
	getByKeyFn func(ctx context.Context, key string) (*model.Task, error)
	markDoneFn func(ctx context.Context, taskID, columnID int64, completedAt time.Time) (bool, error)
	markCalls  int
}

func newMockTaskStore(tasks ...*model.Task) *mockTaskStore {
	m := &mockTaskStore{tasks: make(map[string]*model.Task)}
	for _, t := range tasks {
		m.tasks[t.Key] = t
	}
	return m
}

func (m *mockTaskStore) GetByKey(ctx context.Context, key string) (*model.Task, error) {
	if m.getByKeyFn != nil {
		return m.getByKeyFn(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockTaskStore) MarkDone(ctx context.Context, taskID, columnID int64, completedAt time.Time) (bool, error) {
	m.mu.Lock()
	m.markCalls++
	m.mu.Unlock()
	if m.markDoneFn != nil {
		return m.markDoneFn(ctx, taskID, columnID, completedAt)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tasks {
		if t.ID != taskID {
			continue
		}
		if t.ColumnID == columnID {
			return false, nil
		}
		t.ColumnID = columnID
		t.Status = model.TaskStatusDone
		t.CompletedAt = &completedAt
		return true, nil
	}
	return false, nil
}

func (m *mockTaskStore) get(key string) *model.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks[key]
}

type mockColumnStore struct {
	terminal map[int64]*model.Column // by project id
	err      error
}

func (m *mockColumnStore) GetDefaultByProject(ctx context.Context, projectID int64) (*model.Column, error) {
	if m.err != nil {
		return nil, m.err
	}
	c, ok := m.terminal[projectID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

type mockCommentStore struct {
	mu       sync.Mutex
	comments []model.Comment
	createFn func(ctx context.Context, comment *model.Comment) error
}

func (m *mockCommentStore) Create(ctx context.Context, comment *model.Comment) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, comment); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comments = append(m.comments, *comment)
	return nil
}

func (m *mockCommentStore) all() []model.Comment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.Comment(nil), m.comments...)
}

type mockStores struct {
	tasks    *mockTaskStore
	columns  *mockColumnStore
	comments *mockCommentStore
}

func (m *mockStores) Tasks() store.TaskStore       { return m.tasks }
func (m *mockStores) Columns() store.ColumnStore   { return m.columns }
func (m *mockStores) Comments() store.CommentStore { return m.comments }

type mockProducer struct {
	mu     sync.Mutex
	events []queue.TaskEvent
	err    error
}

func (m *mockProducer) Publish(ctx context.Context, event queue.TaskEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.err
}

func (m *mockProducer) Close() error { return nil }

func (m *mockProducer) types() []queue.TaskEventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]queue.TaskEventType, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type)
	}
	return out
}

type linkCall struct {
	Ref  reference.Reference
	Link service.LinkContext
}

type mockLinker struct {
	calls []linkCall
}

func (m *mockLinker) Apply(ctx context.Context, ref reference.Reference, link service.LinkContext) {
	m.calls = append(m.calls, linkCall{Ref: ref, Link: link})
}
