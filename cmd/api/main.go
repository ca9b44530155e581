package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Click-Movement/ContentSoftware/db"
	"github.com/Click-Movement/ContentSoftware/internal/config"
	"github.com/Click-Movement/ContentSoftware/internal/handler"
	"github.com/Click-Movement/ContentSoftware/internal/observability"
	"github.com/Click-Movement/ContentSoftware/internal/repository"
	"github.com/Click-Movement/ContentSoftware/internal/rewrite"
	"github.com/Click-Movement/ContentSoftware/pkg/images"
	"github.com/Click-Movement/ContentSoftware/pkg/llm"
	"github.com/Click-Movement/ContentSoftware/pkg/news"
	"github.com/Click-Movement/ContentSoftware/pkg/wordpress"
)

var version = "dev"

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger := observability.NewLogger(os.Stdout, cfg.Logging.Level)
	slog.SetDefault(logger)

	shutdown, err := observability.InitTracer(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName+"-api", version)
	if err != nil {
		log.Fatalf("error initialising tracing: %v", err)
	}
	defer shutdown(ctx)

	var (
		store  handler.RewriteStore
		pinger handler.Pinger
	)
	switch err := db.Connect(cfg.Database.URL); {
	case err == nil:
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("error migrating DB: %v", err)
		}
		store = repository.NewRewriteRepository(db.DB)
		pinger = db.DB
	case errors.Is(err, db.ErrNoDatabaseURL):
		slog.Warn("DATABASE_URL not set, rewrite history disabled")
	default:
		log.Fatalf("error connecting to DB: %v", err)
	}

	var cache handler.PageCache
	if cfg.Redis.URL != "" {
		if err := db.ConnectRedis(ctx, cfg.Redis.URL); err != nil {
			slog.Warn("redis unavailable, page cache disabled", "error", err)
		} else {
			defer db.CloseRedis()
			cache = db.NewPageCache(db.Redis, cfg.Redis.CacheTTL)
		}
	}

	backends := llm.NewBackends(llm.Keys{
		OpenAIKey:      cfg.AI.OpenAIKey,
		OpenAIModel:    cfg.AI.OpenAIModel,
		AnthropicKey:   cfg.AI.AnthropicKey,
		AnthropicModel: cfg.AI.AnthropicModel,
	})
	if len(backends) == 0 {
		slog.Warn("no AI backend keys configured, only rule-based rewriting is available")
	}

	var seo llm.Completer
	if gpt := llm.Find(backends, llm.BackendGPT); gpt != nil {
		seo = gpt
	}

	service := rewrite.NewService(nil, backends...).WithDefaults(cfg.Rewrite.DefaultPersona, cfg.AI.DefaultModel)
	fetcher := news.NewPageFetcher(cfg.Fetch.Timeout)

	rewriteHandler := handler.NewRewriteHandler(service, store, seo, cfg.AI.Timeout, cfg.Rewrite.DefaultPersona)
	contentHandler := handler.NewContentHandler(fetcher, cache, images.NewDefaultFinder(cfg.Fetch.Timeout))
	publishHandler := handler.NewPublishHandler(wordpress.NewClient(cfg.Fetch.Timeout), fetcher, seo)
	healthHandler := handler.NewHealthHandler(pinger)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	slog.Info("AllowOrigins URL:", "urls", cfg.Server.AllowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", handler.RequestIDHeader},
		ExposeHeaders: []string{handler.RequestIDHeader},
	}))

	api := r.Group("/api")
	api.POST("/rewrite-direct", rewriteHandler.RewriteDirect)
	api.POST("/rewrite-ai", rewriteHandler.RewriteAI)
	api.POST("/rewrite-content", rewriteHandler.RewriteContent)
	api.POST("/fetch-content", contentHandler.FetchContent)
	api.POST("/find-image", contentHandler.FindImage)
	api.POST("/wordpress-publish-direct", publishHandler.PublishDirect)
	api.POST("/wordpress-publish", publishHandler.Publish)
	api.GET("/personas", rewriteHandler.GetPersonas)
	api.GET("/rewrites", rewriteHandler.GetRewrites)
	r.GET("/health", healthHandler.GetHealth)

	slog.Info("starting server", "addr", cfg.Addr(), "version", version, "models", service.Models())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
