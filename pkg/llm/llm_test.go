package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/go-playground/assert/v2"
	"github.com/openai/openai-go/option"
)

func TestOpenAIClient_Complete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Title: Hi"}}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("key", "", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
	got, err := c.Complete(context.Background(), CompletionRequest{Prompt: "rewrite", MaxTokens: 900, Temperature: 0.75})

	assert.Equal(t, nil, err)
	assert.Equal(t, "Title: Hi", got)
	assert.Equal(t, "gpt", c.Name())
	assert.Equal(t, "gpt-4o", c.Model())
	assert.Equal(t, float64(900), body["max_tokens"])

	msgs := body["messages"].([]any)
	assert.Equal(t, 1, len(msgs))
	assert.Equal(t, "user", msgs[0].(map[string]any)["role"])
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":1,"model":"gpt-4o","choices":[]}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("key", "gpt-4o", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
	got, err := c.Complete(context.Background(), CompletionRequest{Prompt: "p"})
	assert.Equal(t, nil, err)
	assert.Equal(t, "", got)
}

func TestOpenAIClient_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("key", "gpt-4o", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
	_, err := c.Complete(context.Background(), CompletionRequest{Prompt: "p"})
	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.HasPrefix(err.Error(), "openai API error"))
}

func TestAnthropicClient_Complete(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m1","type":"message","role":"assistant","model":"claude-haiku-4-5",
			"content":[{"type":"text","text":"Title: One"},{"type":"text","text":"\n\nContent: two"}],
			"stop_reason":"end_turn","usage":{"input_tokens":3,"output_tokens":4}}`))
	}))
	defer srv.Close()

	c := NewAnthropicClient("key", "", anthropicoption.WithBaseURL(srv.URL), anthropicoption.WithMaxRetries(0))
	got, err := c.Complete(context.Background(), CompletionRequest{System: "sys", Prompt: "p"})

	assert.Equal(t, nil, err)
	assert.Equal(t, "Title: One\n\nContent: two", got)
	assert.Equal(t, "claude", c.Name())
	assert.Equal(t, float64(defaultMaxTokens), body["max_tokens"])
	assert.Equal(t, true, body["system"] != nil)
}

type scriptedCompleter struct {
	reply string
	err   error
	got   CompletionRequest
}

func (s *scriptedCompleter) Complete(_ context.Context, req CompletionRequest) (string, error) {
	s.got = req
	return s.reply, s.err
}
func (s *scriptedCompleter) Name() string  { return "gpt" }
func (s *scriptedCompleter) Model() string { return "test" }

func TestRewriteSEO(t *testing.T) {
	c := &scriptedCompleter{reply: "<h1>Freedom Wins</h1>\n<p>Local families push back.</p>\n<h2>Costs</h2>"}
	res, err := RewriteSEO(context.Background(), c, SEORequest{Title: "Old", Content: "body", OriginalURL: "https://example.com/a"})

	assert.Equal(t, nil, err)
	assert.Equal(t, "Freedom Wins", res.Title)
	assert.Equal(t, "\n<p>Local families push back.</p>\n<h2>Costs</h2>", res.Content)
	assert.Equal(t, c.reply, res.HTMLContent)
	assert.Equal(t, "Local families push back.", res.MetaDescription)
	assert.Equal(t, "https://example.com/a", res.OriginalURL)

	assert.Equal(t, int64(seoMaxTokens), c.got.MaxTokens)
	assert.Equal(t, true, strings.Contains(c.got.Prompt, "Original URL: https://example.com/a"))
	assert.Equal(t, true, strings.Contains(c.got.Prompt, "between 300-500 words."))
}

func TestRewriteSEO_NoHeadingOrParagraph(t *testing.T) {
	c := &scriptedCompleter{reply: "<div>" + strings.Repeat("x", 200) + "</div>"}
	res, err := RewriteSEO(context.Background(), c, SEORequest{Title: "Old", Content: "body", MaintainLength: true})

	assert.Equal(t, nil, err)
	assert.Equal(t, "Old", res.Title)
	assert.Equal(t, strings.Repeat("x", 160), res.MetaDescription)
	assert.Equal(t, true, strings.Contains(c.got.Prompt, "maintain approximately the same length"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{name: "short unchanged", input: "abc", n: 5, want: "abc"},
		{name: "cut at limit", input: "abcdef", n: 3, want: "abc"},
		{name: "counts runes", input: "héllo", n: 2, want: "hé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.n); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewBackends(t *testing.T) {
	backends := NewBackends(Keys{AnthropicKey: "sk-ant", AnthropicModel: "claude-haiku-4-5"})

	assert.Equal(t, 1, len(backends))
	assert.Equal(t, BackendClaude, backends[0].Name())
	assert.Equal(t, "claude-haiku-4-5", backends[0].Model())
	assert.Equal(t, nil, Find(backends, BackendGPT))

	backends = NewBackends(Keys{OpenAIKey: "sk", AnthropicKey: "sk-ant"})
	assert.Equal(t, BackendGPT, Find(backends, BackendGPT).Name())
}
