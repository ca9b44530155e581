package handler

import (
	"errors"
	"net/http"

	"github.com/Click-Movement/ContentSoftware/internal/rewrite"
	"github.com/Click-Movement/ContentSoftware/pkg/wordpress"
)

const (
	msgTitleContentRequired = "Title and content are required"
	msgAllFieldsRequired    = "All fields are required"
	msgWPAuth               = "Authentication failed. Please check your username and password."
	msgWPInvalidParams      = "Invalid parameters. WordPress rejected the post content."
)

// rewriteStatus maps an AI rewrite failure onto a response status.
func rewriteStatus(err error) int {
	switch {
	case errors.Is(err, rewrite.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, rewrite.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// rewriteMessage keeps the persona/model wording of *rewrite.Error and hides
// anything else.
func rewriteMessage(err error) string {
	var rwErr *rewrite.Error
	if errors.As(err, &rwErr) {
		switch {
		case errors.Is(err, rewrite.ErrRateLimited):
			return "Rate limit exceeded. " + rwErr.Error()
		case errors.Is(err, rewrite.ErrTimeout):
			return "Request timed out. " + rwErr.Error()
		}
		return rwErr.Error()
	}
	return "Failed to rewrite content"
}

// wordpressStatus maps a publish failure onto a status and message. Auth
// failures surface as 401 regardless of the status WordPress used.
func wordpressStatus(err error) (int, string) {
	var apiErr *wordpress.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Unauthorized():
			return http.StatusUnauthorized, msgWPAuth
		case apiErr.InvalidParams():
			return http.StatusBadRequest, msgWPInvalidParams
		}
		if apiErr.Message != "" {
			return http.StatusInternalServerError, "Failed to publish to WordPress: " + apiErr.Message
		}
	}
	return http.StatusInternalServerError, "Failed to publish to WordPress"
}
