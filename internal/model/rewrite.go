package model

import "time"

const (
	ModeRule = "rule"
	ModeAI   = "ai"
)

// Rewrite is one stored persona rewrite. SourceArticleID is nil for
// rewrites requested directly over HTTP.
type Rewrite struct {
	ID              string    `json:"id"`
	SourceArticleID *int64    `json:"sourceArticleId,omitempty"`
	Persona         string    `json:"persona"`
	Mode            string    `json:"mode"`
	Model           string    `json:"model,omitempty"`
	OriginalTitle   string    `json:"originalTitle"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
}
