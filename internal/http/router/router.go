package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhook/internal/dedup"
	"basegraph.app/taskhook/internal/http/handler"
	"basegraph.app/taskhook/internal/http/handler/webhook"
	"basegraph.app/taskhook/internal/service"
)

type RouterConfig struct {
	WebhookSecret string
	WebhookPath   string
	Deliveries    dedup.DeliveryCache

	// ActivityReader is nil when Redis is not configured.
	ActivityReader handler.StreamReader
	ActivityStream string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	githubHandler := webhook.NewGitHubWebhookHandler(cfg.WebhookSecret, cfg.Deliveries, services.GitHubEvents())
	statusHandler := handler.NewStatusHandler(cfg.WebhookSecret != "", cfg.WebhookPath)
	WebhookRouter(router.Group(""), cfg.WebhookPath, githubHandler, statusHandler)

	activityHandler := handler.NewActivityHandler(cfg.ActivityReader, cfg.ActivityStream)
	ActivityRouter(router.Group("/activity"), activityHandler)
}
