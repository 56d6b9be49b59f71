package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/courseapproval/internal/app/models/dto"
)

// Pinger is satisfied by every course store
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness and readiness probes
type HealthController struct {
	store Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

// Health reports whether the course store answers
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(pingCtx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Store: "down"})
		return
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Store: "up"})
}

// Ping answers without touching the store
func (h *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
}
