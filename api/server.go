// Package api provides the HTTP REST API server for TubeDigest
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tubedigest/tubedigest/pkg/config"
	"github.com/tubedigest/tubedigest/pkg/extract"
	"github.com/tubedigest/tubedigest/pkg/interfaces"
	"github.com/tubedigest/tubedigest/pkg/store"
)

// Server represents the API server instance
type Server struct {
	engine    *extract.Engine
	summaries interfaces.SummaryStore
	progress  interfaces.ProgressStore
	source    interfaces.SummarySource
	publisher *store.ProgressPublisher
	config    *config.Config
	logger    interfaces.Logger
	router    *gin.Engine
	server    *http.Server
}

// Deps bundles the server's collaborators. Source and Publisher may be nil;
// the corresponding endpoints then report unavailability.
type Deps struct {
	Engine    *extract.Engine
	Summaries interfaces.SummaryStore
	Progress  interfaces.ProgressStore
	Source    interfaces.SummarySource
	Publisher *store.ProgressPublisher
}

// NewServer creates a new API server instance
func NewServer(deps Deps, cfg *config.Config, logger interfaces.Logger) *Server {
	if cfg.LogLevel == "error" || cfg.LogLevel == "warn" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		engine:    deps.Engine,
		summaries: deps.Summaries,
		progress:  deps.Progress,
		source:    deps.Source,
		publisher: deps.Publisher,
		config:    cfg,
		logger:    logger,
		router:    gin.New(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	s.router.Use(cors.New(corsConfig))

	s.router.Use(s.requestIDMiddleware())
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthCheck)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/extract", s.handleExtract)
		v1.GET("/summaries/:hash", s.handleGetSummary)
		v1.POST("/summarize", s.handleSummarize)
		v1.GET("/progress/:task_id", s.handleGetProgress)
	}
}

// Router exposes the underlying router, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the API server and blocks until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.APIPort),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting API server", map[string]interface{}{
		"port": s.config.APIPort,
		"mode": gin.Mode(),
	})

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Failed to start server", err)
		}
	}()

	<-ctx.Done()

	s.logger.Info("Shutting down API server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(shutdownCtx)
}

// Stop gracefully stops the API server
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}
