package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Click-Movement/ContentSoftware/db"
	"github.com/Click-Movement/ContentSoftware/internal/config"
	"github.com/Click-Movement/ContentSoftware/internal/observability"
	"github.com/Click-Movement/ContentSoftware/internal/pipeline"
	"github.com/Click-Movement/ContentSoftware/internal/repository"
	"github.com/Click-Movement/ContentSoftware/pkg/news"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger := observability.NewLogger(os.Stdout, cfg.Logging.Level)
	slog.SetDefault(logger)

	if err := db.Connect(cfg.Database.URL); err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("error migrating DB: %v", err)
	}

	if err := db.ConnectRedis(ctx, cfg.Redis.URL); err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var clients []news.NewsClient
	for _, feed := range cfg.Fetch.Feeds {
		clients = append(clients, news.NewFeedClient(feed))
	}
	if cfg.Fetch.FinnhubKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.Fetch.FinnhubKey))
	}

	if len(clients) == 0 {
		slog.Error("no news sources configured")
		return
	}

	push := func(ctx context.Context, id string) error {
		return db.PushToQueue(ctx, db.RewriteQueueKey, id)
	}

	importer := pipeline.NewImporter(repository.NewArticleRepository(db.DB), push, cfg.Fetch.Limit)
	stats := importer.Import(ctx, clients...)

	queued, err := db.GetQueueLength(ctx, db.RewriteQueueKey)
	if err != nil {
		slog.Warn("could not read queue length", "error", err)
	}
	slog.Info("import complete", "saved", stats.Saved, "duplicated", stats.Duplicated, "errors", stats.Errors, "queued", queued)
}
