package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/opencontextvault/ocv/internal/application/health"
)

// HealthReporter supplies the report served on the health route
type HealthReporter interface {
	Report() health.Report
}

// MetricsRecorder receives one observation per served request
type MetricsRecorder interface {
	ObserveRequest(route string, status int, duration time.Duration)
}

// Server represents an HTTP server bound to a single listener
type Server struct {
	name     string
	router   *gin.Engine
	server   *http.Server
	listener net.Listener
	reporter HealthReporter
	logger   *zap.Logger
}

// Config holds API server configuration
type Config struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	Reporter          HealthReporter
	// Metrics is optional
	Metrics MetricsRecorder
	Logger  *zap.Logger
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	Handler           http.Handler
	Logger            *zap.Logger
}

// NewServer creates the API server
func NewServer(cfg *Config) *Server {
	s := &Server{
		name:     "api",
		router:   newRouter(),
		reporter: cfg.Reporter,
		logger:   cfg.Logger,
	}

	s.router.Use(requestIDMiddleware())
	s.router.Use(corsMiddleware())
	s.router.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		s.router.Use(metricsMiddleware(cfg.Metrics))
	}
	s.router.Use(recoveryMiddleware(cfg.Logger))

	s.setupRoutes()

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	return s
}

// NewMetricsServer creates the server exposing Prometheus metrics
func NewMetricsServer(cfg *MetricsConfig) *Server {
	s := &Server{
		name:   "metrics",
		router: newRouter(),
		logger: cfg.Logger,
	}

	s.router.Use(recoveryMiddleware(cfg.Logger))
	s.router.GET("/metrics", gin.WrapH(cfg.Handler))

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	return s
}

var releaseMode sync.Once

func newRouter() *gin.Engine {
	releaseMode.Do(func() { gin.SetMode(gin.ReleaseMode) })

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	return router
}

// setupRoutes configures API routes.
// No gin routes are registered: every request falls through to dispatch,
// which matches the whole path exactly regardless of method.
func (s *Server) setupRoutes() {
	s.router.NoRoute(s.dispatch)
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the listening socket
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s server to %s: %w", s.name, s.server.Addr, err)
	}

	s.listener = listener
	s.logger.Info("listening",
		zap.String("server", s.name),
		zap.String("addr", listener.Addr().String()))

	return nil
}

// Addr returns the bound address, or the configured one before Listen
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.server.Addr
}

// Serve accepts connections until the server is shut down
func (s *Server) Serve() error {
	if s.listener == nil {
		return fmt.Errorf("%s server is not listening", s.name)
	}

	s.logger.Info("starting HTTP server", zap.String("server", s.name), zap.String("addr", s.Addr()))

	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve %s: %w", s.name, err)
	}

	return nil
}

// Start binds and serves
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server", zap.String("server", s.name))

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown %s server: %w", s.name, err)
	}

	s.logger.Info("HTTP server shut down complete", zap.String("server", s.name))
	return nil
}
