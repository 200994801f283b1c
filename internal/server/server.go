package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"atelier-catalog/config"
	"atelier-catalog/internal/handler"
	"atelier-catalog/internal/middleware"
	"atelier-catalog/internal/ratelimit"
	"atelier-catalog/internal/transport/httpdto"
	"atelier-catalog/pkg/logger"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Artwork  *handler.ArtworkHandler
	Upload   *handler.UploadHandler
	Chat     *handler.ChatHandler
	Export   *handler.ExportHandler
	Printful *handler.PrintfulHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

func (s *Server) SetupRoutes(handlers *Handlers, limiter *ratelimit.Limiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		MaxAge:          12 * time.Hour,
	}))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	s.engine.Static("/uploads", filepath.Join(s.config.PublicDir, "uploads"))

	rl := func(class ratelimit.Class) gin.HandlerFunc {
		return middleware.RateLimitMiddleware(limiter, class)
	}

	api := s.engine.Group("/api")
	{
		artworks := api.Group("/artworks")
		{
			artworks.GET("", rl(ratelimit.ClassList), handlers.Artwork.List)
			artworks.GET("/:id", rl(ratelimit.ClassGet), handlers.Artwork.GetByID)
			artworks.PUT("/:id", rl(ratelimit.ClassUpdate), handlers.Artwork.Update)
			artworks.DELETE("/:id", rl(ratelimit.ClassDelete), handlers.Artwork.Delete)
		}

		api.GET("/upload", handlers.Upload.Constraints)
		api.POST("/upload", rl(ratelimit.ClassUpload), handlers.Upload.Upload)

		api.POST("/chat", rl(ratelimit.ClassChat), handlers.Chat.Chat)
		api.POST("/export", rl(ratelimit.ClassExport), handlers.Export.Export)

		api.GET("/printful", rl(ratelimit.ClassList), handlers.Printful.Catalog)
		api.POST("/printful", rl(ratelimit.ClassProduct), handlers.Printful.CreateProducts)
	}
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	if s.logger != nil {
		s.logger.Infof("Server is running on :%s", s.config.AppPort)
	}

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
