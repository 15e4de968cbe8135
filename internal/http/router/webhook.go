package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/taskhook/internal/http/handler"
	"basegraph.app/taskhook/internal/http/handler/webhook"
)

func WebhookRouter(rg *gin.RouterGroup, path string, h *webhook.GitHubWebhookHandler, status *handler.StatusHandler) {
	rg.POST(path, h.HandleEvent)
	rg.GET("/status", status.Status)
}

func ActivityRouter(rg *gin.RouterGroup, h *handler.ActivityHandler) {
	rg.GET("/stream", h.Stream)
}
