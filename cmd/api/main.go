package main

import (
	"context"
	"log"
	"time"

	"atelier-catalog/config"
	"atelier-catalog/internal/ai"
	"atelier-catalog/internal/handler"
	"atelier-catalog/internal/imaging"
	"atelier-catalog/internal/printful"
	"atelier-catalog/internal/ratelimit"
	"atelier-catalog/internal/repository"
	"atelier-catalog/internal/server"
	"atelier-catalog/internal/services"
	"atelier-catalog/internal/storage"
	"atelier-catalog/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	logMode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)
	defer l.Logger.Sync()

	var assets storage.AssetStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), storage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
		if err != nil {
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		assets = s3Store
		l.Infof("Using S3 asset storage (bucket %s)", cfg.S3Bucket)
	} else {
		assets = storage.NewLocalStore(cfg.PublicDir)
		l.Infof("Using local asset storage under %s", cfg.PublicDir)
	}

	repo := repository.NewFileArtworkRepository(cfg.DataDir, assets)
	processor := imaging.NewBimgProcessor()
	analyzer := ai.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	printfulClient := printful.NewClient(cfg.PrintfulAPIKey)

	limitConfig := ratelimit.DefaultConfig()
	if cfg.RateLimitWindowSec > 0 {
		limitConfig.Window = time.Duration(cfg.RateLimitWindowSec) * time.Second
	}
	limiter := ratelimit.NewLimiter(limitConfig)

	handlers := &server.Handlers{
		Artwork:  handler.NewArtworkHandler(services.NewArtworkService(repo)),
		Upload:   handler.NewUploadHandler(services.NewUploadService(repo, processor, assets, analyzer)),
		Chat:     handler.NewChatHandler(services.NewChatService(repo, analyzer)),
		Export:   handler.NewExportHandler(services.NewExportService(repo)),
		Printful: handler.NewPrintfulHandler(services.NewProductService(repo, printfulClient, cfg.PublicBaseURL)),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
