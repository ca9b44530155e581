package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestPrepareContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		persona string
		want    string
	}{
		{
			name:    "drops first h1 only",
			content: "<H1>Top</H1><p>Body</p><h1>Second</h1>",
			want:    "<p>Body</p><h1>Second</h1>",
		},
		{
			name:    "wraps plain text",
			content: "First line\n\n\nSecond line\n\n  \n\n",
			want:    "<p>First line</p><p>Second line</p>",
		},
		{
			name:    "removes empty paragraphs",
			content: "<p>One</p><p> \n</p><p>Two</p>",
			want:    "<p>One</p><p>Two</p>",
		},
		{
			name:    "appends persona note",
			content: "<p>Hi</p>",
			persona: "Glenn Beck",
			want:    "<p>Hi</p><p><em>This article was written in the style of Glenn Beck.</em></p>",
		},
		{
			name:    "renders markdown",
			content: "Hello *world*",
			format:  FormatMarkdown,
			want:    "<p>Hello <em>world</em></p>\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PrepareContent(tt.content, tt.format, tt.persona)
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateDraft(t *testing.T) {
	var gotPath, gotUser, gotPass string
	var payload map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		json.NewDecoder(r.Body).Decode(&payload)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":42,"link":"https://blog.example.com/?p=42"}`))
	}))
	defer srv.Close()

	c := NewClient(5 * time.Second)
	created, err := c.CreateDraft(context.Background(),
		Site{URL: srv.URL + "/", Username: "editor", Password: "app pass"},
		Post{Title: "T", Content: "<p>C</p>", Excerpt: "E"})

	assert.Equal(t, nil, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, "https://blog.example.com/?p=42", created.Link)
	assert.Equal(t, "/wp-json/wp/v2/posts", gotPath)
	assert.Equal(t, "editor", gotUser)
	assert.Equal(t, "app pass", gotPass)
	assert.Equal(t, "draft", payload["status"])
	assert.Equal(t, "E", payload["excerpt"])
}

func TestCreateDraft_Errors(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		unauthorized bool
		invalid      bool
	}{
		{name: "cannot create", status: 401, body: `{"code":"rest_cannot_create","message":"Sorry"}`, unauthorized: true},
		{name: "invalid param", status: 400, body: `{"code":"rest_invalid_param","message":"Invalid parameter(s): status"}`, invalid: true},
		{name: "not json", status: 502, body: `<html>bad gateway</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(time.Second).CreateDraft(context.Background(), Site{URL: srv.URL}, Post{Title: "T"})

			var apiErr *APIError
			assert.Equal(t, true, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.unauthorized, apiErr.Unauthorized())
			assert.Equal(t, tt.invalid, apiErr.InvalidParams())
			assert.NotEqual(t, "", apiErr.Message)
		})
	}
}

func TestEditURL(t *testing.T) {
	assert.Equal(t, "https://blog.example.com/wp-admin/post.php?post=7&action=edit", EditURL("https://blog.example.com/", 7))
}
