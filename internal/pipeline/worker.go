package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Click-Movement/ContentSoftware/internal/model"
	"github.com/Click-Movement/ContentSoftware/internal/persona"
	"github.com/Click-Movement/ContentSoftware/internal/rewrite"
)

var (
	ErrInvalidID   = errors.New("invalid article id")
	ErrMaxRetries  = errors.New("article exceeded max retries")
	ErrNotFound    = errors.New("article not found")
	ErrRewriteFail = errors.New("rewrite failed, requeued")
)

type ArticleStore interface {
	GetSourceByID(ctx context.Context, id int64) (*model.SourceArticle, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SaveError(ctx context.Context, articleID int64, errMsg string, errType string) error
	GetErrorCount(ctx context.Context, id int64) (int, error)
}

type RewriteStore interface {
	SaveAndComplete(ctx context.Context, rw *model.Rewrite, sourceID int64) error
}

type Rewriter interface {
	Direct(ctx context.Context, title, content, id string) (persona.Result, persona.ID)
	AI(ctx context.Context, title, content, id, model string) (*rewrite.AIResult, error)
}

// PopFunc blocks until an id is available. It returns "", nil when it timed
// out with nothing to hand out.
type PopFunc func(ctx context.Context) (string, error)

type WorkerConfig struct {
	Persona    string
	Mode       string
	Model      string
	MaxRetries int
	Backoff    time.Duration
	AITimeout  time.Duration
}

type Worker struct {
	articles   ArticleStore
	rewrites   RewriteStore
	rewriter   Rewriter
	requeue    PushFunc
	deadLetter PushFunc
	cfg        WorkerConfig
}

// NewWorker builds a queue consumer. deadLetter may be nil.
func NewWorker(articles ArticleStore, rewrites RewriteStore, rewriter Rewriter, requeue, deadLetter PushFunc, cfg WorkerConfig) *Worker {
	return &Worker{
		articles:   articles,
		rewrites:   rewrites,
		rewriter:   rewriter,
		requeue:    requeue,
		deadLetter: deadLetter,
		cfg:        cfg,
	}
}

// Run consumes ids until ctx is done or pop fails. A failed rewrite waits
// for the backoff before the next pop.
func (w *Worker) Run(ctx context.Context, pop PopFunc) error {
	for {
		id, err := pop(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("pop from queue: %w", err)
		}
		if id == "" {
			continue
		}

		err = w.Process(ctx, id)
		if errors.Is(err, ErrRewriteFail) {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(w.cfg.Backoff):
			}
		}
	}
}

// Process rewrites one queued article.
func (w *Worker) Process(ctx context.Context, rawID string) error {
	articleID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		slog.ErrorContext(ctx, "invalid article id in queue", "id", rawID, "error", err)
		return ErrInvalidID
	}

	errorCount, err := w.articles.GetErrorCount(ctx, articleID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting error count", "error", err, "article_id", articleID)
		return err
	}

	if errorCount >= w.cfg.MaxRetries {
		slog.WarnContext(ctx, "article exceeded max retries, marking as failed", "article_id", articleID, "error_count", errorCount)
		if err := w.articles.UpdateStatus(ctx, articleID, model.StatusFailed); err != nil {
			slog.ErrorContext(ctx, "error marking article failed", "error", err, "article_id", articleID)
		}
		if w.deadLetter != nil {
			if err := w.deadLetter(ctx, rawID); err != nil {
				slog.ErrorContext(ctx, "error pushing to dead letter queue", "error", err, "article_id", articleID)
			}
		}
		return ErrMaxRetries
	}

	article, err := w.articles.GetSourceByID(ctx, articleID)
	if err != nil {
		slog.ErrorContext(ctx, "error getting article from DB", "error", err, "article_id", articleID)
		return err
	}
	if article == nil {
		slog.WarnContext(ctx, "article not found in DB", "article_id", articleID)
		return ErrNotFound
	}

	if err := w.articles.UpdateStatus(ctx, articleID, model.StatusProcessing); err != nil {
		slog.WarnContext(ctx, "error marking article processing", "error", err, "article_id", articleID)
	}

	rw, err := w.rewrite(ctx, article)
	if err != nil {
		slog.ErrorContext(ctx, "error rewriting article", "error", err, "article_id", articleID)

		if err := w.articles.SaveError(ctx, articleID, err.Error(), errorType(err)); err != nil {
			slog.ErrorContext(ctx, "error recording failure", "error", err, "article_id", articleID)
		}
		if err := w.requeue(ctx, rawID); err != nil {
			slog.ErrorContext(ctx, "error requeueing article", "error", err, "article_id", articleID)
		}
		return ErrRewriteFail
	}

	if err := w.rewrites.SaveAndComplete(ctx, rw, articleID); err != nil {
		slog.ErrorContext(ctx, "error saving rewrite", "error", err, "article_id", articleID)
		return err
	}

	slog.InfoContext(ctx, "article rewritten successfully", "article_id", articleID, "persona", rw.Persona, "mode", rw.Mode)
	return nil
}

func (w *Worker) rewrite(ctx context.Context, article *model.SourceArticle) (*model.Rewrite, error) {
	rw := &model.Rewrite{
		Mode:          w.cfg.Mode,
		OriginalTitle: article.Headline,
	}

	if w.cfg.Mode == model.ModeAI {
		if w.cfg.AITimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, w.cfg.AITimeout)
			defer cancel()
		}
		res, err := w.rewriter.AI(ctx, article.Headline, article.Detail, w.cfg.Persona, w.cfg.Model)
		if err != nil {
			return nil, err
		}
		rw.Persona = string(res.Persona)
		rw.Model = res.Model
		rw.Title = res.Title
		rw.Content = res.Content
		return rw, nil
	}

	res, used := w.rewriter.Direct(ctx, article.Headline, article.Detail, w.cfg.Persona)
	rw.Persona = string(used)
	rw.Title = res.Title
	rw.Content = res.Content
	return rw, nil
}

func errorType(err error) string {
	switch {
	case errors.Is(err, rewrite.ErrRateLimited):
		return "rate_limit"
	case errors.Is(err, rewrite.ErrTimeout):
		return "timeout"
	default:
		return "llm_error"
	}
}
