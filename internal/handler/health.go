package handler

import (
	"net/http"

	"patentgate/config"
	"patentgate/internal/service"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	config       *config.Configuration
	healthStatus *service.HealthService
}

func NewHealthHandler(config *config.Configuration, status *service.HealthService) *HealthHandler {
	return &HealthHandler{config: config, healthStatus: status}
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.healthStatus.IsLive() {
		c.JSON(http.StatusOK, gin.H{"status": "alive"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.healthStatus.IsReady() {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
		return
	}
	c.Status(http.StatusServiceUnavailable)
}

// Version 部署查版用，不經過回應封裝
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.config.App.Name,
		"version": h.config.App.Version,
		"env":     h.config.App.Env,
	})
}
