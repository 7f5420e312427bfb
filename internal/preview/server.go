// Package preview serves shared and public courses over HTTP. Every
// request is handled like a fresh page load in a shared session: the
// stored state is read, nothing is written back.
package preview

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/arunika/internal/app"
	"github.com/dmitrijs2005/arunika/internal/config"
	"github.com/dmitrijs2005/arunika/internal/kvstore"
	"github.com/dmitrijs2005/arunika/internal/logging"
	"github.com/dmitrijs2005/arunika/internal/router"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address string
	cfg     *config.Config
	store   kvstore.Store
	logger  logging.Logger
	now     func() time.Time
	engine  *gin.Engine
}

// NewServer wraps store read-only and registers the routes.
func NewServer(cfg *config.Config, store kvstore.Store, l logging.Logger) *Server {
	s := &Server{
		address: cfg.PreviewAddr,
		cfg:     cfg,
		store:   kvstore.ReadOnly(store),
		logger:  l.With("module", "preview_server"),
		now:     time.Now,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  s.cfg.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/", s.shared)
	r.GET("/preview", s.publicPreview)
	r.GET("/health", s.health)
	return r
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping preview server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting preview server", "address", s.address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

// open builds a shared, read-only app over the current stored state.
func (s *Server) open(ctx context.Context, entry router.Entry) (*app.App, error) {
	return app.New(ctx, app.Deps{
		Store:  s.store,
		Config: s.cfg,
		Log:    s.logger,
		Now:    s.now,
		Shared: true,
	}, entry)
}
