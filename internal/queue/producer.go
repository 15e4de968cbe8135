package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type TaskEventType string

const (
	// TaskEventLinked is published whenever a commit or merged pull
	// request comment lands on a task.
	TaskEventLinked TaskEventType = "task_linked"
	// TaskEventCompleted is published when automation moved the task into
	// its project's terminal column.
	TaskEventCompleted TaskEventType = "task_completed"
)

// TaskEvent is the activity record the notification system consumes.
type TaskEvent struct {
	Type       TaskEventType
	TaskID     int64
	TaskKey    string
	Repository string
	Ref        string // short commit sha or "#<pr number>"
	TraceID    *string
}

type Producer interface {
	Publish(ctx context.Context, event TaskEvent) error
	Close() error
}

// XAdder is the slice of redis.Cmdable the producer needs.
type XAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type redisProducer struct {
	client XAdder
	closer func() error
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	p := newRedisProducer(client, stream, logger)
	p.closer = client.Close
	return p
}

// NewStreamProducer publishes through any XAdd-capable client without
// owning its lifecycle.
func NewStreamProducer(client XAdder, stream string, logger *slog.Logger) Producer {
	return newRedisProducer(client, stream, logger)
}

func newRedisProducer(client XAdder, stream string, logger *slog.Logger) *redisProducer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event TaskEvent) error {
	fields := map[string]any{
		"type":       string(event.Type),
		"task_id":    strconv.FormatInt(event.TaskID, 10),
		"task_key":   event.TaskKey,
		"repository": event.Repository,
		"ref":        event.Ref,
	}

	if event.TraceID != nil && *event.TraceID != "" {
		fields["trace_id"] = *event.TraceID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("publish task event: %w", err)
	}

	p.logger.DebugContext(ctx, "published task event", "type", event.Type, "task_id", event.TaskID, "task_key", event.TaskKey)
	return nil
}

func (p *redisProducer) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}

type noopProducer struct{}

// NewNoopProducer drops every event. Used when Redis is not configured.
func NewNoopProducer() Producer {
	return noopProducer{}
}

func (noopProducer) Publish(context.Context, TaskEvent) error { return nil }

func (noopProducer) Close() error { return nil }
