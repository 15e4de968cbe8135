package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/taskhook/internal/http/dto"
)

type StatusHandler struct {
	connected   bool
	webhookPath string
}

func NewStatusHandler(connected bool, webhookPath string) *StatusHandler {
	return &StatusHandler{
		connected:   connected,
		webhookPath: webhookPath,
	}
}

// Status tells the board UI whether GitHub deliveries can be authenticated
// and where they should be sent.
func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.WebhookStatusResponse{
		Connected:   h.connected,
		WebhookPath: h.webhookPath,
	})
}
