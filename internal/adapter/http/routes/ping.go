package routes

import (
	"quicksizer/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup, h *handlers.HealthHandler) {
	rg.GET("/ping", h.Ping)
	rg.GET("/healthcheck", h.Healthcheck)
}
