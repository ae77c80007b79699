// Package site serves the portfolio page and its HTMX fragment endpoints.
package site

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mtmuztaba/portfolio/internal/config"
	"github.com/mtmuztaba/portfolio/internal/content"
	"github.com/mtmuztaba/portfolio/internal/db"
	"github.com/mtmuztaba/portfolio/internal/media"
	"github.com/mtmuztaba/portfolio/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Metrics is the analytics storage the site writes to.
type Metrics interface {
	RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error
	RecordClick(ctx context.Context, slug, target string) error
	RecordViewSwitch(ctx context.Context, view string) error
	CleanupVisitors(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*db.Stats, error)
}

// Server is the portfolio web application.
type Server struct {
	cfg     *config.Config
	content *content.Content
	store   session.Store
	metrics Metrics
	images  *media.Resolver
	admin   *adminAuth
	engine  *gin.Engine
}

// New wires the routes. metrics may be nil, which disables tracking and the
// admin dashboard.
func New(cfg *config.Config, c *content.Content, store session.Store, metrics Metrics) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		content: c,
		store:   store,
		metrics: metrics,
		images:  media.NewResolver(cfg.AssetDir, cfg.AssetPrefix),
	}

	admin, err := newAdminAuth(cfg)
	if err != nil {
		return nil, err
	}
	s.admin = admin

	tmpl, err := template.New("").Funcs(funcs(c)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static files: %w", err)
	}
	r.StaticFS("/static", http.FS(static))
	r.Static(cfg.AssetPrefix, cfg.AssetDir)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	page := r.Group("/")
	page.Use(s.sessionMiddleware())
	if metrics != nil {
		page.Use(s.visitorTrackingMiddleware())
	}
	page.GET("/", s.handleIndex)
	page.POST("/view/:view", s.handleView)
	page.POST("/accordion", s.handleAccordion)
	page.POST("/lightbox/open", s.handleLightboxOpen)
	page.POST("/lightbox/next", s.handleLightboxStep(stepNext))
	page.POST("/lightbox/prev", s.handleLightboxStep(stepPrev))
	page.POST("/lightbox/close", s.handleLightboxStep(stepClose))
	page.POST("/nav", s.handleNav)
	page.GET("/go/:slug", s.handleLink)

	if metrics != nil {
		s.setupAdminRoutes(r)
	}

	s.engine = r
	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
