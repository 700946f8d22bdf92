package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"civic-ai-orchestrator/config"
	issueHTTP "civic-ai-orchestrator/internal/issue/delivery/http"
	"civic-ai-orchestrator/internal/middleware"
	"civic-ai-orchestrator/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	mw              middleware.Middleware

	// Issue domain
	issueHandler issueHTTP.Handler
	readiness    Readiness
}

// Readiness reports whether the classification pipeline can serve images.
type Readiness interface {
	Ready() bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	CORS            config.CORSConfig
	RateLimit       config.RateLimitConfig

	// Issue domain
	IssueHandler issueHTTP.Handler

	// Readiness is consulted by /health/ready when RequireRecognizer is set.
	Readiness         Readiness
	RequireRecognizer bool
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		mw:              middleware.New(logger, cfg.CORS, cfg.RateLimit),
		issueHandler:    cfg.IssueHandler,
	}
	if cfg.RequireRecognizer {
		srv.readiness = cfg.Readiness
		if srv.readiness == nil {
			srv.readiness = notReady{}
		}
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.issueHandler == nil {
		return errors.New("issue handler is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

type notReady struct{}

func (notReady) Ready() bool { return false }
