package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
	"github.com/Click-Movement/ContentSoftware/pkg/llm"
	"github.com/Click-Movement/ContentSoftware/pkg/wordpress"
)

type Publisher interface {
	CreateDraft(ctx context.Context, site wordpress.Site, post wordpress.Post) (*wordpress.Created, error)
}

type PublishHandler struct {
	publisher Publisher
	fetcher   PageFetcher
	seo       llm.Completer
}

func NewPublishHandler(publisher Publisher, fetcher PageFetcher, seo llm.Completer) *PublishHandler {
	return &PublishHandler{publisher: publisher, fetcher: fetcher, seo: seo}
}

// PublishDirect posts an already rewritten article as a draft.
func (h *PublishHandler) PublishDirect(c *gin.Context) {
	var req PublishDirectRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Title == "" || req.Content == "" || req.WPURL == "" || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgAllFieldsRequired})
		return
	}

	var name string
	if req.Persona != "" {
		name = persona.DisplayName(req.Persona)
	}

	content, err := wordpress.PrepareContent(req.Content, wordpress.Format(req.Format), name)
	if err != nil {
		slog.Error("error preparing content", "error", err, "format", req.Format)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not prepare content for WordPress"})
		return
	}

	site := wordpress.Site{URL: req.WPURL, Username: req.Username, Password: req.Password}
	created, err := h.publisher.CreateDraft(c.Request.Context(), site, wordpress.Post{
		Title:   req.Title,
		Content: content,
	})
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "error publishing to wordpress", "error", err, "site", req.WPURL)
		status, msg := wordpressStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, PublishDirectResponse{
		Success: true,
		Message: "Post created as draft",
		PostID:  created.ID,
		EditURL: wordpress.EditURL(req.WPURL, created.ID),
		Persona: req.Persona,
	})
}

// Publish fetches a source article, gives it an SEO rewrite and posts the
// result as a draft with the meta description as excerpt.
func (h *PublishHandler) Publish(c *gin.Context) {
	var req PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.SourceURL == "" || req.WPURL == "" || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgAllFieldsRequired})
		return
	}
	if h.seo == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "SEO rewriting is not configured"})
		return
	}

	ctx := c.Request.Context()

	page, err := h.fetcher.Fetch(ctx, req.SourceURL)
	if err != nil {
		slog.ErrorContext(ctx, "error fetching source", "error", err, "url", req.SourceURL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content from URL: " + err.Error()})
		return
	}

	rewritten, err := llm.RewriteSEO(ctx, h.seo, llm.SEORequest{
		Title:           page.Title,
		Content:         page.Content,
		MetaDescription: page.MetaDescription,
		OriginalURL:     req.SourceURL,
		MaintainLength:  true,
	})
	if err != nil {
		slog.ErrorContext(ctx, "error rewriting source", "error", err, "url", req.SourceURL)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rewrite content"})
		return
	}

	site := wordpress.Site{URL: req.WPURL, Username: req.Username, Password: req.Password}
	created, err := h.publisher.CreateDraft(ctx, site, wordpress.Post{
		Title:   rewritten.Title,
		Content: rewritten.HTMLContent,
		Excerpt: rewritten.MetaDescription,
	})
	if err != nil {
		slog.ErrorContext(ctx, "error publishing to wordpress", "error", err, "site", req.WPURL)
		status, msg := wordpressStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, PublishResponse{
		Success: true,
		Message: "Content published to WordPress as draft",
		PostID:  created.ID,
		PostURL: created.Link,
	})
}
