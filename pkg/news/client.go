package news

import (
	"context"
	"time"
)

// Article is a source article pulled from a feed or market-news API, before
// it is rewritten.
type Article struct {
	ExternalID  string
	Headline    string
	Detail      string
	URL         string
	Source      string
	PublishedAt time.Time
	Symbols     []string
	Publisher   string
}

type NewsClient interface {
	Fetch(ctx context.Context, limit int) ([]Article, error)
	Name() string
}
