// Package images looks up freely licensed pictures to use as featured images.
package images

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

var ErrNotFound = errors.New("no suitable image found")

type Image struct {
	URL         string `json:"url"`
	Source      string `json:"source"`
	PageTitle   string `json:"pageTitle,omitempty"`
	PageURL     string `json:"pageUrl,omitempty"`
	License     string `json:"license"`
	Attribution string `json:"attribution,omitempty"`
}

type Searcher interface {
	Find(ctx context.Context, query string) (*Image, error)
	Name() string
}

// Finder asks each searcher in turn and returns the first hit.
type Finder struct {
	searchers []Searcher
}

func NewFinder(searchers ...Searcher) *Finder {
	return &Finder{searchers: searchers}
}

// NewDefaultFinder tries Wikipedia, then Unsplash, then Pixabay.
func NewDefaultFinder(timeout time.Duration) *Finder {
	httpClient := &http.Client{Timeout: timeout}
	return NewFinder(
		&Wikipedia{httpClient: httpClient, apiURL: wikipediaAPI, wikiURL: wikipediaPages},
		&Unsplash{httpClient: httpClient, baseURL: unsplashBase},
		&Pixabay{httpClient: httpClient, baseURL: pixabayBase},
	)
}

func (f *Finder) Find(ctx context.Context, query string) (*Image, error) {
	var lastErr error
	for _, s := range f.searchers {
		img, err := s.Find(ctx, query)
		if err == nil {
			return img, nil
		}
		slog.WarnContext(ctx, "image source failed", "source", s.Name(), "query", query, "error", err)
		lastErr = err
	}
	if lastErr == nil {
		return nil, ErrNotFound
	}
	return nil, fmt.Errorf("%w: %w", ErrNotFound, lastErr)
}
