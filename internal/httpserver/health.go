package httpserver

import (
	"github.com/gin-gonic/gin"

	"civic-ai-orchestrator/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	RootMessage   = "Civic AI Orchestrator is running."
	HealthVersion = "1.0.0"
	ServiceName   = "civic-ai-orchestrator"
)

// root handles the service banner.
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (srv HTTPServer) root(c *gin.Context) {
	response.JSON(c, gin.H{"message": RootMessage})
}

// probeLive is the orchestrator liveness probe.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health/live [get]
func (srv HTTPServer) probeLive(c *gin.Context) {
	response.JSON(c, gin.H{"status": "alive"})
}

// probeReady is the orchestrator readiness probe.
// @Summary Readiness probe
// @Description Fails with 503 when a recognizer is required but none is configured.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} response.Resp
// @Router /health/ready [get]
func (srv HTTPServer) probeReady(c *gin.Context) {
	if !srv.ready() {
		response.Unavailable(c, gin.H{"status": "not_ready"})
		return
	}
	response.JSON(c, gin.H{"status": "ready"})
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if !srv.ready() {
		response.Unavailable(c, gin.H{"status": "not_ready", "service": ServiceName})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": RootMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

func (srv HTTPServer) ready() bool {
	return srv.readiness == nil || srv.readiness.Ready()
}
