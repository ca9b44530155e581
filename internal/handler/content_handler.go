package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Click-Movement/ContentSoftware/pkg/images"
	"github.com/Click-Movement/ContentSoftware/pkg/news"
)

type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*news.Page, error)
}

type PageCache interface {
	Get(ctx context.Context, url string) (*news.Page, error)
	Set(ctx context.Context, url string, page *news.Page) error
}

type ImageFinder interface {
	Find(ctx context.Context, query string) (*images.Image, error)
}

type ContentHandler struct {
	fetcher PageFetcher
	cache   PageCache
	images  ImageFinder
}

// NewContentHandler builds the fetch and image endpoints. cache may be nil.
func NewContentHandler(fetcher PageFetcher, cache PageCache, finder ImageFinder) *ContentHandler {
	return &ContentHandler{fetcher: fetcher, cache: cache, images: finder}
}

// FetchContent echoes a pasted article back, or extracts one from a URL.
func (h *ContentHandler) FetchContent(c *gin.Context) {
	var req ContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.URL == "" {
		if req.Title == "" || req.Content == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Either a URL or title and content are required"})
			return
		}
		c.JSON(http.StatusOK, ContentResponse{Title: req.Title, Content: req.Content, URL: ""})
		return
	}

	page, err := h.page(c.Request.Context(), req.URL)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "error fetching content", "error", err, "url", req.URL)
		status := http.StatusInternalServerError
		if errors.Is(err, news.ErrInvalidURL) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": "Failed to fetch content from URL: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ContentResponse{
		Title:           page.Title,
		Content:         page.Content,
		MetaDescription: page.MetaDescription,
		URL:             page.URL,
	})
}

// page consults the cache before fetching. Cache errors only cost a refetch.
func (h *ContentHandler) page(ctx context.Context, url string) (*news.Page, error) {
	if h.cache != nil {
		cached, err := h.cache.Get(ctx, url)
		if err != nil {
			slog.WarnContext(ctx, "page cache read failed", "error", err, "url", url)
		} else if cached != nil {
			return cached, nil
		}
	}

	page, err := h.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, url, page); err != nil {
			slog.WarnContext(ctx, "page cache write failed", "error", err, "url", url)
		}
	}
	return page, nil
}

func (h *ContentHandler) FindImage(c *gin.Context) {
	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	img, err := h.images.Find(c.Request.Context(), req.Query)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "no image found", "error", err, "query", req.Query)
		c.JSON(http.StatusNotFound, gin.H{"error": "No suitable image found"})
		return
	}

	c.JSON(http.StatusOK, img)
}
