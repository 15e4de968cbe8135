package mapper

import (
	"context"
	"errors"
)

type CanonicalEventType string

const (
	EventPing        CanonicalEventType = "ping"
	EventPush        CanonicalEventType = "push"
	EventPullRequest CanonicalEventType = "pull_request"
)

// ErrUnsupportedEvent is returned for event types the automation does not
// act on. Callers accept such deliveries and do nothing.
var ErrUnsupportedEvent = errors.New("unsupported event type")

type EventMapper interface {
	Map(ctx context.Context, body map[string]any, headers map[string]string) (CanonicalEventType, error)
}
