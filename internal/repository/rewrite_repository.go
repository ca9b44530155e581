package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Click-Movement/ContentSoftware/internal/model"
)

type RewriteRepository struct {
	db *sql.DB
}

func NewRewriteRepository(db *sql.DB) *RewriteRepository {
	return &RewriteRepository{db: db}
}

// NewRewriteID returns a time-ordered id, so history sorts by id as well as
// by created_at.
func NewRewriteID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), rand.Reader).String()
}

func (r *RewriteRepository) Save(ctx context.Context, rw *model.Rewrite) error {
	return insertRewrite(ctx, r.db, rw)
}

// SaveAndComplete stores the rewrite and marks its source article completed
// in one transaction.
func (r *RewriteRepository) SaveAndComplete(ctx context.Context, rw *model.Rewrite, sourceID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rw.SourceArticleID = &sourceID
	if err := insertRewrite(ctx, tx, rw); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE source_article SET status = $1 WHERE id = $2
	`, model.StatusCompleted, sourceID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertRewrite(ctx context.Context, db rowQuerier, rw *model.Rewrite) error {
	now := time.Now().UTC()
	if rw.ID == "" {
		rw.ID = NewRewriteID(now)
	}

	return db.QueryRowContext(ctx, `
		INSERT INTO rewrite(id, source_article_id, persona, mode, model, original_title, title, content)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`, rw.ID, rw.SourceArticleID, rw.Persona, rw.Mode, rw.Model, rw.OriginalTitle, rw.Title, rw.Content).Scan(&rw.CreatedAt)
}

func (r *RewriteRepository) List(ctx context.Context, limit, offset int) ([]model.Rewrite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, source_article_id, persona, mode, model, original_title, title, content, created_at
		FROM rewrite
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rewrites []model.Rewrite
	for rows.Next() {
		var rw model.Rewrite
		err := rows.Scan(&rw.ID, &rw.SourceArticleID, &rw.Persona, &rw.Mode, &rw.Model,
			&rw.OriginalTitle, &rw.Title, &rw.Content, &rw.CreatedAt)
		if err != nil {
			return nil, err
		}
		rewrites = append(rewrites, rw)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rewrites, nil
}

func (r *RewriteRepository) Total(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rewrite`).Scan(&total)
	return total, err
}
