package handler

import (
	"net/http"

	"quant-sentiment/pkg/tracing"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Service   string `json:"service" example:"quant-service"`
	Timestamp int64  `json:"timestamp" example:"1760745600000"`
}

// Health godoc
// @Summary      Health check
// @Description  Returns the health status of the service
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/v1/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   tracing.ServiceName,
		Timestamp: h.now().UnixMilli(),
	})
}
