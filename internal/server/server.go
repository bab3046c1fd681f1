package server

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/san-kum/sortviz/internal/animation"
	"github.com/san-kum/sortviz/internal/config"
)

const Version = "1.0.0"

// Server exposes one Session over HTTP. A Driver ticks the session in the
// background while an animation runs.
type Server struct {
	session   *animation.Session
	driver    *animation.Driver
	cfg       config.ServerConfig
	log       zerolog.Logger
	startTime time.Time

	// ctx bounds driver goroutines; canceled by Run on shutdown.
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex // serializes start/stop/step against the driver
}

func NewServer(session *animation.Session, cfg config.ServerConfig, log zerolog.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		session:   session,
		driver:    animation.NewDriver(session, animation.ExitOnDone(), animation.WithDriverLogger(log)),
		cfg:       cfg,
		log:       log,
		startTime: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Engine builds the gin engine with CORS, recovery, request logging and routes.
func (s *Server) Engine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.Use(cors.New(s.corsConfig()))
	s.SetupRoutes(r)
	return r
}

func (s *Server) corsConfig() cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Length", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(s.cfg.CORSOrigins) == 0 || slices.Contains(s.cfg.CORSOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = s.cfg.CORSOrigins
	}
	return c
}

func (s *Server) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/algorithms", s.handleAlgorithms)
		api.GET("/frame", s.handleFrame)

		api.POST("/create", s.handleCreate)
		api.POST("/algorithm", s.handleAlgorithm)
		api.POST("/interval", s.handleInterval)

		api.POST("/start", s.handleStart)
		api.POST("/stop", s.handleStop)
		api.POST("/step", s.handleStep)
		api.POST("/reset", s.handleReset)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// Run serves on cfg.Addr until ctx is canceled, then shuts down gracefully
// and stops any running animation.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.Close()
	s.log.Info().Msg("http server stopped")
	return err
}

// Close stops the animation and the driver goroutine.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Stop()
	s.driver.Stop()
	s.cancel()
}

// halt stops the session and waits for the driver. Caller holds s.mu.
func (s *Server) halt() {
	s.session.Stop()
	s.driver.Stop()
}
