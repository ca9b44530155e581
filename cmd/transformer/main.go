package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Click-Movement/ContentSoftware/db"
	"github.com/Click-Movement/ContentSoftware/internal/config"
	"github.com/Click-Movement/ContentSoftware/internal/observability"
	"github.com/Click-Movement/ContentSoftware/internal/pipeline"
	"github.com/Click-Movement/ContentSoftware/internal/repository"
	"github.com/Click-Movement/ContentSoftware/internal/rewrite"
	"github.com/Click-Movement/ContentSoftware/pkg/llm"
)

var version = "dev"

const popTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger := observability.NewLogger(os.Stdout, cfg.Logging.Level)
	slog.SetDefault(logger)

	shutdown, err := observability.InitTracer(ctx, cfg.Tracing.Endpoint, cfg.Tracing.ServiceName+"-transformer", version)
	if err != nil {
		log.Fatalf("error initialising tracing: %v", err)
	}
	defer shutdown(context.Background())

	if err := db.ConnectRedis(ctx, cfg.Redis.URL); err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	if err := db.Connect(cfg.Database.URL); err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	backends := llm.NewBackends(llm.Keys{
		OpenAIKey:      cfg.AI.OpenAIKey,
		OpenAIModel:    cfg.AI.OpenAIModel,
		AnthropicKey:   cfg.AI.AnthropicKey,
		AnthropicModel: cfg.AI.AnthropicModel,
	})
	workerModel := rewrite.ResolveModel(cfg.Worker.Model, cfg.AI.DefaultModel)
	if cfg.Worker.Mode == "ai" && llm.Find(backends, workerModel) == nil {
		log.Fatalf("worker.mode is ai but no key is configured for %q", workerModel)
	}

	push := func(key string) pipeline.PushFunc {
		return func(ctx context.Context, id string) error {
			return db.PushToQueue(ctx, key, id)
		}
	}

	worker := pipeline.NewWorker(
		repository.NewArticleRepository(db.DB),
		repository.NewRewriteRepository(db.DB),
		rewrite.NewService(nil, backends...).WithDefaults(cfg.Rewrite.DefaultPersona, cfg.AI.DefaultModel),
		push(db.RewriteQueueKey),
		push(db.DeadLetterKey),
		pipeline.WorkerConfig{
			Persona:    cfg.Worker.Persona,
			Mode:       cfg.Worker.Mode,
			Model:      workerModel,
			MaxRetries: cfg.Worker.MaxRetries,
			Backoff:    cfg.Worker.Backoff,
			AITimeout:  cfg.AI.Timeout,
		},
	)

	pop := func(ctx context.Context) (string, error) {
		id, err := db.PopFromQueue(ctx, db.RewriteQueueKey, popTimeout)
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return id, err
	}

	slog.Info("transformer started", "persona", cfg.Worker.Persona, "mode", cfg.Worker.Mode, "model", workerModel)
	if err := worker.Run(ctx, pop); err != nil {
		slog.Error("transformer stopped", "error", err)
		return
	}
	slog.Info("transformer stopped")
}
