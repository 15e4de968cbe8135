package logger

import (
	"context"
	"unicode/utf8"
)

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every log record emitted with a context that
// carries them. Webhook processing enriches the context as it narrows down
// from delivery to repository to task.
type LogFields struct {
	DeliveryID *string // X-GitHub-Delivery
	EventType  *string // X-GitHub-Event
	Repository *string // repository.full_name
	TaskKey    *string // e.g. "PROJ-12"
	RequestID  *string
	Component  string // e.g. "taskhook.service.linker"
}

// WithLogFields enriches ctx with structured log fields. Newer non-nil
// values replace older ones.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.DeliveryID != nil {
		result.DeliveryID = next.DeliveryID
	}
	if next.EventType != nil {
		result.EventType = next.EventType
	}
	if next.Repository != nil {
		result.Repository = next.Repository
	}
	if next.TaskKey != nil {
		result.TaskKey = next.TaskKey
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v.
// logger.WithLogFields(ctx, logger.LogFields{TaskKey: logger.Ptr(key)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate cuts s to at most maxLen bytes on a rune boundary, appending
// "..." when it was longer.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
