package mapper

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const HeaderGitHubEvent = "X-GitHub-Event"

type GitHubEventMapper struct{}

func NewGitHubEventMapper() *GitHubEventMapper {
	return &GitHubEventMapper{}
}

// Map resolves the X-GitHub-Event header. The body is not consulted:
// GitHub always names the event in the header.
func (m *GitHubEventMapper) Map(ctx context.Context, body map[string]any, headers map[string]string) (CanonicalEventType, error) {
	event, _ := headerValue(headers, HeaderGitHubEvent)
	return MapGitHubEvent(event)
}

func MapGitHubEvent(event string) (CanonicalEventType, error) {
	switch CanonicalEventType(strings.TrimSpace(event)) {
	case EventPing:
		return EventPing, nil
	case EventPush:
		return EventPush, nil
	case EventPullRequest:
		return EventPullRequest, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEvent, event)
}

// NormalizeBody unwraps form-encoded deliveries. When a webhook is set to
// application/x-www-form-urlencoded, GitHub sends the JSON document as a
// string field named "payload". If that string parses as a JSON object it
// becomes the effective body; otherwise the body is returned unchanged.
func NormalizeBody(body map[string]any) map[string]any {
	raw, ok := body["payload"].(string)
	if !ok {
		return body
	}

	var inner map[string]any
	if err := json.Unmarshal([]byte(raw), &inner); err != nil || inner == nil {
		return body
	}
	return inner
}

// GitHub headers arrive canonicalised by net/http (X-Github-Event), so
// lookups ignore case.
func headerValue(headers map[string]string, key string) (string, bool) {
	if v, ok := headers[key]; ok {
		return v, true
	}
	for k, v := range headers {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}
