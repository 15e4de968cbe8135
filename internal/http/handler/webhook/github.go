package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhook/common/logger"
	"basegraph.app/taskhook/internal/dedup"
	"basegraph.app/taskhook/internal/domain"
	"basegraph.app/taskhook/internal/http/dto"
	"basegraph.app/taskhook/internal/mapper"
	"basegraph.app/taskhook/internal/service"
	"basegraph.app/taskhook/internal/signature"
)

const HeaderGitHubDelivery = "X-GitHub-Delivery"

const (
	msgMissingEvent     = "Missing X-GitHub-Event header"
	msgInvalidSignature = "Invalid signature"
	msgProcessingFailed = "Webhook processing failed"
)

var errUnparseableBody = errors.New("body is neither JSON nor a form with a payload field")

type GitHubWebhookHandler struct {
	secret     string
	deliveries dedup.DeliveryCache
	router     service.GitHubEventRouter
}

func NewGitHubWebhookHandler(secret string, deliveries dedup.DeliveryCache, router service.GitHubEventRouter) *GitHubWebhookHandler {
	return &GitHubWebhookHandler{
		secret:     secret,
		deliveries: deliveries,
		router:     router,
	}
}

// HandleEvent answers only after every mutation for the delivery has run.
func (h *GitHubWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic while processing github webhook",
				"error", r,
				"stack", string(debug.Stack()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgProcessingFailed})
		}
	}()

	event := strings.TrimSpace(c.GetHeader(mapper.HeaderGitHubEvent))
	if event == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgMissingEvent})
		return
	}

	deliveryID := c.GetHeader(HeaderGitHubDelivery)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		DeliveryID: logger.Ptr(deliveryID),
		EventType:  logger.Ptr(event),
		Component:  "taskhook.http.webhook",
	})

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read github webhook body", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgProcessingFailed})
		return
	}

	seen, err := h.deliveries.Seen(ctx, deliveryID)
	if err != nil {
		slog.WarnContext(ctx, "delivery dedup unavailable, processing anyway", "error", err)
		seen = false
	}
	if seen {
		slog.InfoContext(ctx, "duplicate github delivery ignored")
		c.JSON(http.StatusOK, dto.WebhookResponse{Success: true, Duplicate: true})
		return
	}

	if !signature.Verify(raw, signature.PickHeader(c.GetHeader), h.secret) {
		slog.WarnContext(ctx, "github webhook signature rejected", "remote_ip", c.ClientIP())
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msgInvalidSignature})
		return
	}

	body, err := parseBody(raw)
	if err != nil {
		if needsBody(event) {
			slog.ErrorContext(ctx, "failed to parse github webhook body", "error", err, "content_type", c.ContentType())
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgProcessingFailed})
			return
		}
		slog.DebugContext(ctx, "ignoring unparseable body", "error", err)
		body = map[string]any{}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for key, values := range c.Request.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	outcome, err := h.router.Route(ctx, domain.Delivery{
		ID:         deliveryID,
		Event:      event,
		Headers:    headers,
		Raw:        raw,
		Body:       body,
		ReceivedAt: time.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to process github webhook", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgProcessingFailed})
		return
	}

	slog.InfoContext(ctx, "github webhook processed",
		"canonical_event_type", outcome.Event,
		"commits", outcome.Commits,
		"references", outcome.References,
	)

	if outcome.Pong {
		c.JSON(http.StatusOK, dto.WebhookResponse{Success: true, Pong: true})
		return
	}
	c.JSON(http.StatusOK, dto.WebhookResponse{Success: true})
}

// needsBody reports whether the event is one whose payload gets inspected.
// Pings and unsupported events are accepted whatever the body holds.
func needsBody(event string) bool {
	canonical, err := mapper.MapGitHubEvent(event)
	if err != nil {
		return false
	}
	return canonical != mapper.EventPing
}

// parseBody accepts both content types GitHub can be configured with:
// application/json, and application/x-www-form-urlencoded where the JSON
// document sits in the payload field.
func parseBody(raw []byte) (map[string]any, error) {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err == nil && body != nil {
		return body, nil
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnparseableBody, err)
	}
	if !values.Has("payload") {
		return nil, errUnparseableBody
	}

	body = make(map[string]any, len(values))
	for key := range values {
		body[key] = values.Get(key)
	}
	return body, nil
}
