package router_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhook/internal/dedup"
	"basegraph.app/taskhook/internal/http/router"
	"basegraph.app/taskhook/internal/model"
	"basegraph.app/taskhook/internal/queue"
	"basegraph.app/taskhook/internal/service"
	"basegraph.app/taskhook/internal/signature"
	"basegraph.app/taskhook/internal/store"
)

type emptyStores struct{}

func (emptyStores) Tasks() store.TaskStore       { return emptyTasks{} }
func (emptyStores) Columns() store.ColumnStore   { return nil }
func (emptyStores) Comments() store.CommentStore { return nil }

type emptyTasks struct{}

func (emptyTasks) GetByKey(ctx context.Context, key string) (*model.Task, error) {
	return nil, store.ErrNotFound
}

func (emptyTasks) MarkDone(ctx context.Context, taskID, columnID int64, completedAt time.Time) (bool, error) {
	return false, nil
}

var _ = Describe("SetupRoutes", func() {
	var engine *gin.Engine

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		engine = gin.New()
		services := service.NewServices(emptyStores{}, queue.NewNoopProducer(), nil)
		router.SetupRoutes(engine, services, router.RouterConfig{
			WebhookSecret:  "s3cret",
			WebhookPath:    "/hooks/github",
			Deliveries:     dedup.NewMemoryCache(time.Minute),
			ActivityStream: "taskhook_activity",
		})
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("serves health", func() {
		Expect(get("/health").Body.String()).To(MatchJSON(`{"status":"ok"}`))
	})

	It("serves status with the configured webhook path", func() {
		Expect(get("/status").Body.String()).To(MatchJSON(`{"connected":true,"webhookPath":"/hooks/github"}`))
	})

	It("mounts the webhook at the configured path", func() {
		body := []byte(`{"zen":"Anything added dilutes everything else."}`)
		req := httptest.NewRequest(http.MethodPost, "/hooks/github", bytes.NewReader(body))
		req.Header.Set("X-GitHub-Event", "ping")
		req.Header.Set(signature.HeaderSHA256, signature.Sign(body, "s3cret", signature.SHA256))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"success":true,"pong":true}`))
	})

	It("reports the activity stream as unavailable without redis", func() {
		Expect(get("/activity/stream").Code).To(Equal(http.StatusServiceUnavailable))
	})
})
