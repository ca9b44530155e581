package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Click-Movement/ContentSoftware/db"
	"github.com/Click-Movement/ContentSoftware/internal/pipeline"
	"github.com/Click-Movement/ContentSoftware/internal/repository"
	"github.com/Click-Movement/ContentSoftware/pkg/news"
)

var importCmd = &cobra.Command{
	Use:   "import [feed-url...]",
	Short: "Import articles from feeds into the rewrite queue",
	Long:  "Fetch the given feeds (or the configured ones, plus Finnhub when FINNHUB_API_KEY is set), store new articles and queue them for the transformer.",
	RunE:  runImport,
}

var flagImportRequeue bool

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&flagImportRequeue, "requeue-pending", false, "Only push pending articles back onto the rewrite queue")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	feeds := args
	if len(feeds) == 0 {
		feeds = cfg.Fetch.Feeds
	}

	var clients []news.NewsClient
	for _, feed := range feeds {
		clients = append(clients, news.NewFeedClient(feed))
	}
	if cfg.Fetch.FinnhubKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.Fetch.FinnhubKey))
	}
	if len(clients) == 0 && !flagImportRequeue {
		return errors.New("no feeds given and none configured")
	}

	ctx := cmd.Context()

	if err := db.Connect(cfg.Database.URL); err != nil {
		return fmt.Errorf("connect to DB: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	if err := db.ConnectRedis(ctx, cfg.Redis.URL); err != nil {
		return fmt.Errorf("connect to Redis: %w", err)
	}
	defer db.CloseRedis()

	push := func(ctx context.Context, id string) error {
		return db.PushToQueue(ctx, db.RewriteQueueKey, id)
	}
	repo := repository.NewArticleRepository(db.DB)

	if flagImportRequeue {
		n, err := pipeline.RequeuePending(ctx, repo, push, cfg.Fetch.Limit)
		if err != nil {
			return fmt.Errorf("requeue pending: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Requeued %d pending articles\n", n)
		return nil
	}

	stats := pipeline.NewImporter(repo, push, cfg.Fetch.Limit).Import(ctx, clients...)

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %d, skipped %d duplicates, %d errors\n", stats.Saved, stats.Duplicated, stats.Errors)
	return nil
}
