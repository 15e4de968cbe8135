package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"basegraph.app/taskhook/common/logger"
	"basegraph.app/taskhook/internal/domain"
	"basegraph.app/taskhook/internal/mapper"
	"basegraph.app/taskhook/internal/reference"
)

// ErrInvalidPayload is returned when a supported event's body does not
// have the shape GitHub documents for it.
var ErrInvalidPayload = errors.New("invalid webhook payload")

// Outcome summarises what a delivery did.
type Outcome struct {
	Event      mapper.CanonicalEventType // empty for events the automation ignores
	Pong       bool
	Commits    int // commits scanned for references
	References int // references handed to the linker
}

type GitHubEventRouter interface {
	// Route dispatches an authenticated delivery. Unsupported events are
	// accepted with an empty Outcome.
	Route(ctx context.Context, delivery domain.Delivery) (Outcome, error)
}

type githubEventRouter struct {
	mapper mapper.EventMapper
	linker TaskLinker
	logger *slog.Logger
}

func NewGitHubEventRouter(eventMapper mapper.EventMapper, linker TaskLinker, logger *slog.Logger) GitHubEventRouter {
	if logger == nil {
		logger = slog.Default()
	}
	return &githubEventRouter{
		mapper: eventMapper,
		linker: linker,
		logger: logger,
	}
}

func (r *githubEventRouter) Route(ctx context.Context, delivery domain.Delivery) (Outcome, error) {
	body := mapper.NormalizeBody(delivery.Body)

	event, err := r.mapper.Map(ctx, body, eventHeaders(delivery))
	if err != nil {
		if errors.Is(err, mapper.ErrUnsupportedEvent) {
			r.logger.DebugContext(ctx, "ignoring unsupported github event", "event", delivery.Event)
			return Outcome{}, nil
		}
		return Outcome{}, err
	}

	sc := logger.StartSpan(ctx, "webhook.route",
		attribute.String("github.event", string(event)),
		attribute.String("github.delivery", delivery.ID),
	)
	defer sc.End()
	ctx = sc.Context()

	var outcome Outcome
	switch event {
	case mapper.EventPing:
		r.logger.InfoContext(ctx, "github ping received")
		outcome = Outcome{Event: event, Pong: true}
	case mapper.EventPush:
		outcome, err = r.routePush(ctx, body)
	case mapper.EventPullRequest:
		outcome, err = r.routePullRequest(ctx, body)
	}
	if err != nil {
		sc.RecordError(err)
		return Outcome{}, err
	}

	sc.SetAttributes(
		attribute.Int("webhook.commits", outcome.Commits),
		attribute.Int("webhook.references", outcome.References),
	)
	return outcome, nil
}

func (r *githubEventRouter) routePush(ctx context.Context, body map[string]any) (Outcome, error) {
	var push domain.PushEvent
	if err := decodeBody(body, &push); err != nil {
		return Outcome{}, err
	}

	repo := push.Repository.FullName
	ctx = logger.WithLogFields(ctx, logger.LogFields{Repository: logger.Ptr(repo)})

	outcome := Outcome{Event: mapper.EventPush}
	for _, commit := range push.Commits {
		if commit.ID == "" || commit.Message == "" {
			continue
		}
		outcome.Commits++

		refs := reference.Extract(commit.Message)
		r.logger.DebugContext(ctx, "scanned commit",
			"commit", commit.ShortID(),
			"message", logger.Truncate(commit.Message, 72),
			"references", len(refs),
		)
		for _, ref := range refs {
			r.linker.Apply(ctx, ref, LinkContext{
				Kind:       LinkCommit,
				Repository: repo,
				Commit:     commit,
			})
		}
		outcome.References += len(refs)
	}

	r.logger.InfoContext(ctx, "push processed", "ref", push.Ref, "commits", outcome.Commits, "references", outcome.References)
	return outcome, nil
}

func (r *githubEventRouter) routePullRequest(ctx context.Context, body map[string]any) (Outcome, error) {
	var pr domain.PullRequestEvent
	if err := decodeBody(body, &pr); err != nil {
		return Outcome{}, err
	}

	repo := pr.Repository.FullName
	ctx = logger.WithLogFields(ctx, logger.LogFields{Repository: logger.Ptr(repo)})

	outcome := Outcome{Event: mapper.EventPullRequest}
	if !pr.IsMerge() {
		r.logger.DebugContext(ctx, "pull request not merged, skipping", "action", pr.Action, "number", pr.PRNumber())
		return outcome, nil
	}

	refs := reference.Extract(pr.PullRequest.Title + "\n" + pr.PullRequest.Body)
	for _, ref := range refs {
		r.linker.Apply(ctx, ref, LinkContext{
			Kind:       LinkPullRequest,
			Repository: repo,
			PRNumber:   pr.PRNumber(),
		})
	}
	outcome.References = len(refs)

	r.logger.InfoContext(ctx, "merged pull request processed", "number", pr.PRNumber(), "references", outcome.References)
	return outcome, nil
}

// eventHeaders returns the delivery headers with X-GitHub-Event set from
// delivery.Event, which wins over any header copy.
func eventHeaders(delivery domain.Delivery) map[string]string {
	if delivery.Event == "" {
		return delivery.Headers
	}
	headers := make(map[string]string, len(delivery.Headers)+1)
	for key, value := range delivery.Headers {
		if strings.EqualFold(key, mapper.HeaderGitHubEvent) {
			continue
		}
		headers[key] = value
	}
	headers[mapper.HeaderGitHubEvent] = delivery.Event
	return headers
}

// decodeBody converts the generic body into a typed event.
func decodeBody(body map[string]any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
