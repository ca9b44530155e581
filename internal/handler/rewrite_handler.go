package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Click-Movement/ContentSoftware/internal/model"
	"github.com/Click-Movement/ContentSoftware/internal/persona"
	"github.com/Click-Movement/ContentSoftware/internal/rewrite"
	"github.com/Click-Movement/ContentSoftware/pkg/llm"
)

type Rewriter interface {
	Direct(ctx context.Context, title, content, id string) (persona.Result, persona.ID)
	AI(ctx context.Context, title, content, id, model string) (*rewrite.AIResult, error)
	Models() []string
}

type RewriteStore interface {
	Save(ctx context.Context, rw *model.Rewrite) error
	List(ctx context.Context, limit, offset int) ([]model.Rewrite, error)
	Total(ctx context.Context) (int, error)
}

type RewriteHandler struct {
	rewriter       Rewriter
	store          RewriteStore
	seo            llm.Completer
	aiTimeout      time.Duration
	defaultPersona string
}

// NewRewriteHandler wires the rewrite endpoints. store and seo may be nil:
// history is then neither recorded nor listed, and rewrite-content answers 503.
func NewRewriteHandler(rewriter Rewriter, store RewriteStore, seo llm.Completer, aiTimeout time.Duration, defaultPersona string) *RewriteHandler {
	return &RewriteHandler{
		rewriter:       rewriter,
		store:          store,
		seo:            seo,
		aiTimeout:      aiTimeout,
		defaultPersona: defaultPersona,
	}
}

// personaOrDefault sends empty and unknown ids alike to the configured default.
func (h *RewriteHandler) personaOrDefault(id string) string {
	return string(persona.ResolveOr(id, persona.ID(h.defaultPersona)))
}

func (h *RewriteHandler) RewriteDirect(c *gin.Context) {
	var req RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTitleContentRequired})
		return
	}

	res, used := h.rewriter.Direct(c.Request.Context(), req.Title, req.Content, h.personaOrDefault(req.Persona))

	h.record(c.Request.Context(), &model.Rewrite{
		Persona:       string(used),
		Mode:          model.ModeRule,
		OriginalTitle: req.Title,
		Title:         res.Title,
		Content:       res.Content,
	})

	c.JSON(http.StatusOK, RewriteResponse{
		Success: true,
		Title:   res.Title,
		Content: res.Content,
		Persona: string(used),
	})
}

func (h *RewriteHandler) RewriteAI(c *gin.Context) {
	var req RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTitleContentRequired})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.aiTimeout)
	defer cancel()

	res, err := h.rewriter.AI(ctx, req.Title, req.Content, h.personaOrDefault(req.Persona), req.Model)
	if err != nil {
		slog.ErrorContext(ctx, "error rewriting with ai", "error", err, "persona", req.Persona, "model", req.Model)
		c.JSON(rewriteStatus(err), gin.H{"error": rewriteMessage(err)})
		return
	}

	h.record(c.Request.Context(), &model.Rewrite{
		Persona:       string(res.Persona),
		Mode:          model.ModeAI,
		Model:         res.Model,
		OriginalTitle: req.Title,
		Title:         res.Title,
		Content:       res.Content,
	})

	c.JSON(http.StatusOK, RewriteResponse{
		Success: true,
		Title:   res.Title,
		Content: res.Content,
		Persona: string(res.Persona),
		Model:   res.Model,
	})
}

// RewriteContent produces an SEO-structured rewrite of roughly the original length.
func (h *RewriteHandler) RewriteContent(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgTitleContentRequired})
		return
	}
	if h.seo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SEO rewriting is not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.aiTimeout)
	defer cancel()

	res, err := llm.RewriteSEO(ctx, h.seo, llm.SEORequest{
		Title:          req.Title,
		Content:        req.Content,
		OriginalURL:    req.URL,
		MaintainLength: true,
	})
	if err != nil {
		slog.ErrorContext(ctx, "error rewriting content", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rewrite content"})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *RewriteHandler) GetPersonas(c *gin.Context) {
	c.JSON(http.StatusOK, PersonasResponse{
		Personas: persona.All(),
		Default:  string(persona.Resolve(h.defaultPersona)),
		Models:   h.rewriter.Models(),
	})
}

func (h *RewriteHandler) GetRewrites(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "History is not available"})
		return
	}

	total, err := h.store.Total(c.Request.Context())
	if err != nil {
		slog.Error("error fetching rewrite total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rewrites, err := h.store.List(c.Request.Context(), limit, offset)
	if err != nil {
		slog.Error("error fetching rewrites", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]RewriteItemResponse, 0, len(rewrites))
	for _, rw := range rewrites {
		items = append(items, RewriteItemResponse{
			ID:              rw.ID,
			SourceArticleID: rw.SourceArticleID,
			Persona:         rw.Persona,
			Mode:            rw.Mode,
			Model:           rw.Model,
			OriginalTitle:   rw.OriginalTitle,
			Title:           rw.Title,
			Content:         rw.Content,
			CreatedAt:       rw.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, RewriteListResponse{
		Rewrites: items,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

// record stores a rewrite in history. Failures are logged and never reach
// the caller.
func (h *RewriteHandler) record(ctx context.Context, rw *model.Rewrite) {
	if h.store == nil {
		return
	}
	if err := h.store.Save(ctx, rw); err != nil {
		slog.WarnContext(ctx, "could not record rewrite", "error", err, "persona", rw.Persona, "mode", rw.Mode)
	}
}
