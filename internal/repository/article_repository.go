package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/Click-Movement/ContentSoftware/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SaveSource inserts a pending article. It reports false when the URL is
// already known.
func (r *ArticleRepository) SaveSource(ctx context.Context, article *model.SourceArticle) (bool, error) {
	if article.PublishedAt.IsZero() {
		article.PublishedAt = time.Now()
	}
	symbols := article.Symbols
	if symbols == nil {
		symbols = []string{}
	}

	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO source_article(headline, detail, url, source, publisher, symbols, published_at, external_id, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, article.Headline, article.Detail, article.URL, article.Source, article.Publisher, pq.Array(symbols),
		article.PublishedAt, article.ExternalID, model.StatusPending).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	article.Status = model.StatusPending
	return true, nil
}

func (r *ArticleRepository) GetSourceByID(ctx context.Context, id int64) (*model.SourceArticle, error) {
	var a model.SourceArticle
	err := r.db.QueryRowContext(ctx, `
		SELECT id, headline, detail, url, source, publisher, symbols, published_at, fetched_at, external_id, status
		FROM source_article
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Headline, &a.Detail, &a.URL, &a.Source, &a.Publisher, pq.Array(&a.Symbols),
		&a.PublishedAt, &a.FetchedAt, &a.ExternalID, &a.Status)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *ArticleRepository) GetPending(ctx context.Context, limit int) ([]model.SourceArticle, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, headline, detail, url, source, publisher, symbols, published_at, fetched_at, external_id, status
		FROM source_article
		WHERE status = $1
		ORDER BY fetched_at ASC
		LIMIT $2
	`, model.StatusPending, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.SourceArticle
	for rows.Next() {
		var a model.SourceArticle
		err := rows.Scan(&a.ID, &a.Headline, &a.Detail, &a.URL, &a.Source, &a.Publisher, pq.Array(&a.Symbols),
			&a.PublishedAt, &a.FetchedAt, &a.ExternalID, &a.Status)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE source_article SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

func (r *ArticleRepository) SaveError(ctx context.Context, articleID int64, errMsg string, errType string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO processing_error(article_id, error_message, error_type)
		VALUES($1, $2, $3)
	`, articleID, errMsg, errType)

	return err
}

func (r *ArticleRepository) GetErrorCount(ctx context.Context, id int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM processing_error
		WHERE article_id = $1
	`, id).Scan(&count)

	return count, err
}
