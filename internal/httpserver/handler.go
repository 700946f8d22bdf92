package httpserver

import (
	"context"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "civic-ai-orchestrator/docs"
	issueHTTP "civic-ai-orchestrator/internal/issue/delivery/http"
	"civic-ai-orchestrator/internal/model"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		srv.mw.Recovery(),
		srv.mw.RequestID(),
		srv.mw.Logger(),
		srv.mw.Cors(),
	)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/health/live", srv.probeLive)
	srv.gin.GET("/health/ready", srv.probeReady)

	// API docs are not served in production.
	if model.Environment(srv.environment).IsProduction() {
		srv.l.Infof(context.Background(), "Swagger UI disabled in %s", srv.environment)
		return
	}
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers /internal/ai/* behind the rate limiter.
func (srv HTTPServer) registerDomainRoutes() {
	issueHTTP.RegisterRoutes(srv.gin.Group("/internal"), srv.issueHandler, srv.mw.RateLimit())
	srv.l.Infof(context.Background(), "Issue classification routes registered at /internal/ai")
}
