package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	CodeCannotCreate = "rest_cannot_create"
	CodeInvalidParam = "rest_invalid_param"
)

// Site identifies a WordPress install and the application password used to
// post to it.
type Site struct {
	URL      string
	Username string
	Password string
}

type Post struct {
	Title   string
	Content string
	Excerpt string
}

type Created struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// APIError is a non-2xx answer from the REST API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress %d %s: %s", e.Status, e.Code, e.Message)
}

// Unauthorized reports whether WordPress refused the credentials.
func (e *APIError) Unauthorized() bool {
	return e.Code == CodeCannotCreate || e.Status == http.StatusUnauthorized
}

// InvalidParams reports whether WordPress rejected the post fields.
func (e *APIError) InvalidParams() bool {
	return e.Code == CodeInvalidParam
}

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{httpClient: &http.Client{Timeout: timeout}}
}

func baseURL(site string) string {
	return strings.TrimRight(site, "/")
}

// EditURL is the admin link for a created post.
func EditURL(site string, id int) string {
	return fmt.Sprintf("%s/wp-admin/post.php?post=%d&action=edit", baseURL(site), id)
}

// CreateDraft creates an unpublished post with basic auth.
func (c *Client) CreateDraft(ctx context.Context, site Site, post Post) (*Created, error) {
	ctx, span := otel.Tracer("github.com/Click-Movement/ContentSoftware/pkg/wordpress").Start(ctx, "wordpress.create_post")
	defer span.End()

	payload := map[string]string{
		"title":   post.Title,
		"content": post.Content,
		"status":  "draft",
	}
	if post.Excerpt != "" {
		payload["excerpt"] = post.Excerpt
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("wordpress encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL(site.URL)+"/wp-json/wp/v2/posts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("wordpress request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(site.Username, site.Password)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("wordpress create post: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		span.SetStatus(codes.Error, apiErr.Error())
		return nil, apiErr
	}

	var created Created
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("wordpress decode: %w", err)
	}
	span.SetAttributes(attribute.Int("wordpress.post_id", created.ID))
	return &created, nil
}

func decodeError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
