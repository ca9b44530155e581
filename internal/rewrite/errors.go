package rewrite

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"

	"github.com/Click-Movement/ContentSoftware/internal/persona"
)

var (
	ErrRateLimited = errors.New("rate limited")
	ErrTimeout     = errors.New("timed out")
	ErrBackend     = errors.New("backend failure")
	ErrNoBackend   = errors.New("backend not configured")
)

// Error is returned by the AI path. Its message is safe to show to callers;
// errors.Is matches both the classification sentinel and the cause.
type Error struct {
	Kind    error
	Persona persona.ID
	Model   string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("Failed to rewrite content in %s style with %s. Please try again later.", e.Persona, e.Model)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Classify maps an upstream error onto ErrRateLimited, ErrTimeout or
// ErrBackend.
func Classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var oaErr *openai.Error
	if errors.As(err, &oaErr) && oaErr.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	var anErr *anthropic.Error
	if errors.As(err, &anErr) && anErr.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "429"), strings.Contains(msg, "too many requests"):
		return ErrRateLimited
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "timed out"), strings.Contains(msg, "deadline exceeded"):
		return ErrTimeout
	}
	return ErrBackend
}
