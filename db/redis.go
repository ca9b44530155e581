package db

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Click-Movement/ContentSoftware/pkg/news"
)

var Redis *redis.Client

const (
	RewriteQueueKey = "contentsoftware:queue:rewrite"
	DeadLetterKey   = "contentsoftware:queue:failed"
	pageCachePrefix = "contentsoftware:page:"
)

func ConnectRedis(ctx context.Context, redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func PushToQueue(ctx context.Context, queueKey string, data string) error {
	return Redis.LPush(ctx, queueKey, data).Err()
}

// PopFromQueue blocks for up to timeout. redis.Nil means nothing arrived.
func PopFromQueue(ctx context.Context, queueKey string, timeout time.Duration) (string, error) {
	result, err := Redis.BRPop(ctx, timeout, queueKey).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}

func GetQueueLength(ctx context.Context, queueKey string) (int64, error) {
	return Redis.LLen(ctx, queueKey).Result()
}

// PageCache keeps fetched pages keyed by URL.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{client: client, ttl: ttl}
}

// Get returns nil, nil on a miss.
func (c *PageCache) Get(ctx context.Context, url string) (*news.Page, error) {
	raw, err := c.client.Get(ctx, pageCachePrefix+url).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var page news.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Set stores page under the url it was requested with, which may differ
// from the normalised page.URL.
func (c *PageCache) Set(ctx context.Context, url string, page *news.Page) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pageCachePrefix+url, raw, c.ttl).Err()
}
