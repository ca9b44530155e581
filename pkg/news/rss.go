package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FeedClient reads one RSS or Atom feed.
type FeedClient struct {
	url    string
	parser *gofeed.Parser
}

func NewFeedClient(url string) *FeedClient {
	return &FeedClient{url: url, parser: gofeed.NewParser()}
}

func (c *FeedClient) Name() string {
	return "RSS"
}

func (c *FeedClient) Fetch(ctx context.Context, limit int) ([]Article, error) {
	feed, err := c.parser.ParseURLWithContext(c.url, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss fetch %s: %w", c.url, err)
	}

	var articles []Article
	for _, item := range feed.Items {
		if limit > 0 && len(articles) >= limit {
			break
		}
		if item.Link == "" {
			continue
		}

		a := Article{
			ExternalID: item.GUID,
			Headline:   strings.TrimSpace(item.Title),
			Detail:     item.Content,
			URL:        item.Link,
			Source:     c.Name(),
			Publisher:  feed.Title,
			Symbols:    item.Categories,
		}
		if a.ExternalID == "" {
			a.ExternalID = item.Link
		}
		if a.Detail == "" {
			a.Detail = item.Description
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			a.PublishedAt = *item.UpdatedParsed
		}
		if a.Symbols == nil {
			a.Symbols = []string{}
		}

		articles = append(articles, a)
	}

	return articles, nil
}
