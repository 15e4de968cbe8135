package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"basegraph.app/taskhook/common/id"
	"basegraph.app/taskhook/common/logger"
	"basegraph.app/taskhook/internal/domain"
	"basegraph.app/taskhook/internal/model"
	"basegraph.app/taskhook/internal/queue"
	"basegraph.app/taskhook/internal/reference"
	"basegraph.app/taskhook/internal/store"
)

type LinkKind string

const (
	LinkCommit      LinkKind = "commit"
	LinkPullRequest LinkKind = "pull_request"
)

// LinkContext describes where a reference was found.
type LinkContext struct {
	Kind       LinkKind
	Repository string

	Commit   domain.Commit // set for LinkCommit
	PRNumber int64         // set for LinkPullRequest
}

func (l LinkContext) ref() string {
	if l.Kind == LinkPullRequest {
		return "#" + strconv.FormatInt(l.PRNumber, 10)
	}
	return l.Commit.ShortID()
}

// commentBody renders the text appended to the task's activity.
func (l LinkContext) commentBody() string {
	if l.Kind == LinkPullRequest {
		return fmt.Sprintf("Pull request #%d merged in %s", l.PRNumber, l.Repository)
	}
	return fmt.Sprintf("Referenced in commit `%s` on %s: %s", l.Commit.ShortID(), l.Repository, l.Commit.Message)
}

// transitions reports whether the link should move the task to its
// project's terminal column. A merged pull request always does.
func (l LinkContext) transitions(ref reference.Reference) bool {
	return ref.IsClosing || l.Kind == LinkPullRequest
}

// TaskLinker applies one extracted reference to the board.
type TaskLinker interface {
	// Apply never fails the delivery: unknown keys are skipped and store
	// errors are logged.
	Apply(ctx context.Context, ref reference.Reference, link LinkContext)
}

type taskLinker struct {
	stores   StoreProvider
	producer queue.Producer
	logger   *slog.Logger
	now      func() time.Time
}

func NewTaskLinker(stores StoreProvider, producer queue.Producer, logger *slog.Logger) TaskLinker {
	return newTaskLinker(stores, producer, logger, time.Now)
}

func newTaskLinker(stores StoreProvider, producer queue.Producer, logger *slog.Logger, now func() time.Time) *taskLinker {
	if logger == nil {
		logger = slog.Default()
	}
	if producer == nil {
		producer = queue.NewNoopProducer()
	}
	return &taskLinker{
		stores:   stores,
		producer: producer,
		logger:   logger,
		now:      now,
	}
}

func (s *taskLinker) Apply(ctx context.Context, ref reference.Reference, link LinkContext) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		TaskKey:   logger.Ptr(ref.TaskKey),
		Component: "taskhook.service.linker",
	})

	sc := logger.StartSpan(ctx, "task_linker.apply",
		attribute.String("task.key", ref.TaskKey),
		attribute.Bool("task.closing", ref.IsClosing),
		attribute.String("link.kind", string(link.Kind)),
	)
	defer sc.End()
	ctx = sc.Context()

	if err := s.apply(ctx, ref, link); err != nil {
		sc.RecordError(err)
		s.logger.ErrorContext(ctx, "failed to apply task reference", "error", err, "link_kind", link.Kind, "ref", link.ref())
	}
}

func (s *taskLinker) apply(ctx context.Context, ref reference.Reference, link LinkContext) error {
	task, err := s.stores.Tasks().GetByKey(ctx, ref.TaskKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.DebugContext(ctx, "referenced task not found, skipping")
			return nil
		}
		return fmt.Errorf("loading task: %w", err)
	}

	source := model.CommentSourceGitHub
	comment := &model.Comment{
		ID:       id.New(),
		TaskID:   task.ID,
		AuthorID: task.CreatorID,
		Body:     link.commentBody(),
		Source:   &source,
	}
	if err := s.stores.Comments().Create(ctx, comment); err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}

	s.logger.InfoContext(ctx, "linked task", "task_id", task.ID, "comment_id", comment.ID, "ref", link.ref())
	s.publish(ctx, queue.TaskEventLinked, task, link)

	if !link.transitions(ref) {
		return nil
	}

	column, err := s.stores.Columns().GetDefaultByProject(ctx, task.ProjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.InfoContext(ctx, "project has no terminal column, task left in place", "project_id", task.ProjectID)
			return nil
		}
		return fmt.Errorf("loading terminal column: %w", err)
	}

	if task.InColumn(column.ID) {
		s.logger.DebugContext(ctx, "task already in terminal column", "task_id", task.ID, "column_id", column.ID)
		return nil
	}

	moved, err := s.stores.Tasks().MarkDone(ctx, task.ID, column.ID, s.now().UTC())
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}
	if !moved {
		s.logger.DebugContext(ctx, "task completed concurrently", "task_id", task.ID)
		return nil
	}

	s.logger.InfoContext(ctx, "task completed", "task_id", task.ID, "column_id", column.ID, "column", column.Name)
	s.publish(ctx, queue.TaskEventCompleted, task, link)
	return nil
}

func (s *taskLinker) publish(ctx context.Context, eventType queue.TaskEventType, task *model.Task, link LinkContext) {
	event := queue.TaskEvent{
		Type:       eventType,
		TaskID:     task.ID,
		TaskKey:    task.Key,
		Repository: link.Repository,
		Ref:        link.ref(),
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		event.TraceID = logger.Ptr(sc.TraceID().String())
	}

	if err := s.producer.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish task event", "error", err, "type", eventType, "task_id", task.ID)
	}
}
