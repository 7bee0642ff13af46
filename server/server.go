// Package server exposes Fina's HTTP surface: the chat endpoint proxying to
// the completion API, a health endpoint, a read-only history endpoint and
// static file serving with an SPA fallback chain.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/fina-ai/fina/config"
	"github.com/fina-ai/fina/core"
	"github.com/fina-ai/fina/logging"
	"github.com/fina-ai/fina/model"
	"github.com/fina-ai/fina/telemetry"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server wires the session store, prompt composition and the completion
// backend behind a gin router.
type Server struct {
	cfg    config.Config
	store  core.SessionStore
	model  model.Model
	logger logging.Logger
	tel    *telemetry.Telemetry
	engine *gin.Engine
}

// New constructs the server and registers all routes. logger may be nil for
// silent operation; tel may be nil to disable instrumentation.
func New(cfg config.Config, store core.SessionStore, mdl model.Model, logger logging.Logger, tel *telemetry.Telemetry) *Server {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	s := &Server{
		cfg:    cfg,
		store:  store,
		model:  mdl,
		logger: logger,
		tel:    tel,
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestID(), s.requestLog())

	engine.POST("/chat", s.handleChat)
	engine.GET("/health", s.handleHealth)
	engine.GET("/history", s.handleHistory)
	// Static files and the SPA fallback share the catch-all route so the
	// candidate chain stays an explicit ordered list.
	engine.NoRoute(s.handleStatic)

	s.engine = engine
	return s
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() *gin.Engine { return s.engine }
