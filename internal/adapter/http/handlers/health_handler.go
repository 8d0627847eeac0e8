package handlers

import (
	"net/http"
	"time"

	response "quicksizer/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	clock func() time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{clock: func() time.Time { return time.Now().UTC() }}
}

// Ping godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Router   /v1/ping [get]
func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Timestamp: h.clock()})
}

// Healthcheck godoc
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Router   /v1/healthcheck [get]
func (h *HealthHandler) Healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{Status: "ok", Timestamp: h.clock()})
}
