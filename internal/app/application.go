package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voiceflow-dashboard/internal/components"
	"voiceflow-dashboard/internal/config"
	"voiceflow-dashboard/internal/handlers"
	"voiceflow-dashboard/internal/middleware"
	"voiceflow-dashboard/pkg/logger"
	"voiceflow-dashboard/pkg/navigation"
)

type Application struct {
	cfg *config.Config

	renderer         *components.Renderer
	templateHandler  *handlers.TemplateHandler
	rateLimitManager *middleware.RateLimitManager

	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := navigation.Validate(components.NavigationBar().Entries()...); err != nil {
		return nil, fmt.Errorf("invalid navigation: %w", err)
	}

	if err := app.initHandlers(); err != nil {
		return nil, err
	}

	app.rateLimitManager = middleware.NewRateLimitManager(context.Background())

	app.initRouter()

	app.server = &http.Server{
		Addr:           cfg.Addr(),
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimitManager != nil {
		if err := a.rateLimitManager.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limiter", nil)
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initHandlers() error {
	renderer, err := components.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	logger.Info("Templates loaded successfully", nil)

	templateHandler, err := handlers.NewTemplateHandler(renderer, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize template handler: %w", err)
	}

	a.renderer = renderer
	a.templateHandler = templateHandler
	return nil
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	router.Use(middleware.SecurityHeadersMiddleware())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimitManager))

	if len(a.cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  a.cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.StaticFS("/static", http.FS(components.StaticFS()))

	router.GET("/", a.templateHandler.RenderIndex)
	router.HEAD("/", a.templateHandler.RenderIndex)
	router.GET("/partials/navbar", a.templateHandler.RenderNavigationBar)

	router.NoRoute(a.templateHandler.RenderNotFound)

	a.router = router
}
