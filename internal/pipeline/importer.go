// Package pipeline moves imported articles through the rewrite queue.
package pipeline

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/Click-Movement/ContentSoftware/internal/model"
	"github.com/Click-Movement/ContentSoftware/pkg/news"
)

type SourceStore interface {
	SaveSource(ctx context.Context, article *model.SourceArticle) (bool, error)
}

// PushFunc enqueues an article id for rewriting.
type PushFunc func(ctx context.Context, id string) error

type ImportStats struct {
	Saved      int
	Duplicated int
	Errors     int
}

type Importer struct {
	store SourceStore
	push  PushFunc
	limit int
}

func NewImporter(store SourceStore, push PushFunc, limit int) *Importer {
	return &Importer{store: store, push: push, limit: limit}
}

// Import pulls from every client, stores new articles as pending and queues
// them. A failing client is logged and skipped.
func (im *Importer) Import(ctx context.Context, clients ...news.NewsClient) ImportStats {
	var total ImportStats

	for _, client := range clients {
		source := client.Name()

		fetched, err := client.Fetch(ctx, im.limit)
		if err != nil {
			slog.ErrorContext(ctx, "error fetching articles", "source", source, "error", err)
			total.Errors++
			continue
		}

		var stats ImportStats
		for _, a := range fetched {
			article := model.SourceArticle{
				Headline:    a.Headline,
				Detail:      a.Detail,
				URL:         a.URL,
				Source:      a.Source,
				Publisher:   a.Publisher,
				Symbols:     a.Symbols,
				PublishedAt: a.PublishedAt,
				ExternalID:  a.ExternalID,
			}

			saved, err := im.store.SaveSource(ctx, &article)
			if err != nil {
				slog.ErrorContext(ctx, "error saving article", "source", source, "error", err)
				stats.Errors++
				continue
			}

			if !saved {
				slog.DebugContext(ctx, "duplicate article skipped", "source", source, "url", a.URL)
				stats.Duplicated++
				continue
			}

			stats.Saved++

			if err := im.push(ctx, strconv.FormatInt(article.ID, 10)); err != nil {
				slog.ErrorContext(ctx, "error pushing to queue", "source", source, "error", err, "article_id", article.ID)
				stats.Errors++
			}
		}

		slog.InfoContext(ctx, "fetch complete", "source", source, "saved", stats.Saved, "duplicated", stats.Duplicated, "errors", stats.Errors)

		total.Saved += stats.Saved
		total.Duplicated += stats.Duplicated
		total.Errors += stats.Errors
	}

	return total
}

type PendingStore interface {
	GetPending(ctx context.Context, limit int) ([]model.SourceArticle, error)
}

// RequeuePending pushes up to limit pending articles back onto the queue,
// oldest first. Used to recover after the queue was lost.
func RequeuePending(ctx context.Context, store PendingStore, push PushFunc, limit int) (int, error) {
	pending, err := store.GetPending(ctx, limit)
	if err != nil {
		return 0, err
	}

	var queued int
	for _, a := range pending {
		if err := push(ctx, strconv.FormatInt(a.ID, 10)); err != nil {
			return queued, err
		}
		queued++
	}
	return queued, nil
}
