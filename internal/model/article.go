package model

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// SourceArticle is an imported article waiting for, or done with, a rewrite.
type SourceArticle struct {
	ID          int64
	Headline    string
	Detail      string
	URL         string
	Source      string
	Publisher   string
	Symbols     []string
	PublishedAt time.Time
	FetchedAt   time.Time
	ExternalID  string
	Status      string
}
