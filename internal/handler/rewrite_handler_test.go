package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/Click-Movement/ContentSoftware/internal/model"
	"github.com/Click-Movement/ContentSoftware/internal/persona"
	"github.com/Click-Movement/ContentSoftware/internal/rewrite"
	"github.com/Click-Movement/ContentSoftware/pkg/llm"
)

type fakeRewriter struct {
	aiResult *rewrite.AIResult
	aiErr    error
	gotID    string
	gotModel string
	deadline bool
}

func (f *fakeRewriter) Direct(_ context.Context, title, content, id string) (persona.Result, persona.ID) {
	f.gotID = id
	return persona.Result{Title: "Rewritten " + title, Content: "<p>" + content + "</p>"}, persona.Resolve(id)
}

func (f *fakeRewriter) AI(ctx context.Context, _, _, id, model string) (*rewrite.AIResult, error) {
	f.gotID = id
	f.gotModel = model
	_, f.deadline = ctx.Deadline()
	return f.aiResult, f.aiErr
}

func (f *fakeRewriter) Models() []string { return []string{"claude", "gpt"} }

type fakeRewriteStore struct {
	saved    []model.Rewrite
	rewrites []model.Rewrite
	total    int
	err      error
}

func (f *fakeRewriteStore) Save(_ context.Context, rw *model.Rewrite) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, *rw)
	return nil
}

func (f *fakeRewriteStore) List(_ context.Context, limit, offset int) ([]model.Rewrite, error) {
	return f.rewrites, f.err
}

func (f *fakeRewriteStore) Total(_ context.Context) (int, error) {
	return f.total, f.err
}

type fakeCompleter struct {
	text string
	err  error
}

func (f *fakeCompleter) Complete(context.Context, llm.CompletionRequest) (string, error) {
	return f.text, f.err
}
func (f *fakeCompleter) Name() string  { return llm.BackendGPT }
func (f *fakeCompleter) Model() string { return "test" }

func newTestRewriteRouter(rw Rewriter, store RewriteStore, seo llm.Completer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRewriteHandler(rw, store, seo, time.Minute, string(persona.RushLimbaugh))
	r.POST("/api/rewrite-direct", h.RewriteDirect)
	r.POST("/api/rewrite-ai", h.RewriteAI)
	r.POST("/api/rewrite-content", h.RewriteContent)
	r.GET("/api/personas", h.GetPersonas)
	r.GET("/api/rewrites", h.GetRewrites)
	return r
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRewriteDirect(t *testing.T) {
	rw := &fakeRewriter{}
	store := &fakeRewriteStore{}
	r := newTestRewriteRouter(rw, store, nil)

	w := postJSON(r, "/api/rewrite-direct", RewriteRequest{Title: "Tax bill", Content: "Body", Persona: "glenn_beck"})

	assert.Equal(t, http.StatusOK, w.Code)

	var res RewriteResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, true, res.Success)
	assert.Equal(t, "Rewritten Tax bill", res.Title)
	assert.Equal(t, "glenn_beck", res.Persona)

	assert.Equal(t, 1, len(store.saved))
	assert.Equal(t, model.ModeRule, store.saved[0].Mode)
	assert.Equal(t, "Tax bill", store.saved[0].OriginalTitle)
}

func TestRewriteDirect_DefaultPersona(t *testing.T) {
	rw := &fakeRewriter{}
	r := newTestRewriteRouter(rw, nil, nil)

	w := postJSON(r, "/api/rewrite-direct", RewriteRequest{Title: "T", Content: "C"})

	var res RewriteResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "rush_limbaugh", rw.gotID)
	assert.Equal(t, "rush_limbaugh", res.Persona)
}

func TestRewrite_ConfiguredDefaultPersona(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gpt := &fakeCompleter{text: "Title: Campus Alert\n\nContent:\nIt happened."}
	service := rewrite.NewService(persona.NewSeededSource(1), gpt).WithDefaults("", llm.BackendGPT)
	h := NewRewriteHandler(service, nil, nil, time.Minute, string(persona.CharlieKirk))

	r := gin.New()
	r.POST("/api/rewrite-direct", h.RewriteDirect)
	r.POST("/api/rewrite-ai", h.RewriteAI)

	tests := []struct {
		name    string
		persona string
	}{
		{"empty", ""},
		{"unknown", "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := RewriteRequest{Title: "Campus protests grow", Content: "Students marched.\n\nThe dean responded.", Persona: tt.persona}

			w := postJSON(r, "/api/rewrite-direct", req)
			assert.Equal(t, http.StatusOK, w.Code)
			var direct RewriteResponse
			json.Unmarshal(w.Body.Bytes(), &direct)
			assert.Equal(t, "charlie_kirk", direct.Persona)

			w = postJSON(r, "/api/rewrite-ai", req)
			assert.Equal(t, http.StatusOK, w.Code)
			var ai RewriteResponse
			json.Unmarshal(w.Body.Bytes(), &ai)
			assert.Equal(t, "charlie_kirk", ai.Persona)
			assert.Equal(t, "gpt", ai.Model)
		})
	}
}

func TestRewriteDirect_MissingFields(t *testing.T) {
	r := newTestRewriteRouter(&fakeRewriter{}, nil, nil)

	w := postJSON(r, "/api/rewrite-direct", RewriteRequest{Title: "Only a title"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Title and content are required", res["error"])
}

func TestRewriteDirect_StoreErrorIgnored(t *testing.T) {
	store := &fakeRewriteStore{err: errors.New("DB down")}
	r := newTestRewriteRouter(&fakeRewriter{}, store, nil)

	w := postJSON(r, "/api/rewrite-direct", RewriteRequest{Title: "T", Content: "C"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRewriteAI(t *testing.T) {
	rw := &fakeRewriter{aiResult: &rewrite.AIResult{
		Result:  persona.Result{Title: "AI title", Content: "<p>AI body</p>"},
		Persona: persona.TomiLahren,
		Model:   "gpt",
	}}
	store := &fakeRewriteStore{}
	r := newTestRewriteRouter(rw, store, nil)

	w := postJSON(r, "/api/rewrite-ai", RewriteRequest{Title: "T", Content: "C", Persona: "tomi_lahren", Model: "gpt"})

	assert.Equal(t, http.StatusOK, w.Code)

	var res RewriteResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "AI title", res.Title)
	assert.Equal(t, "tomi_lahren", res.Persona)
	assert.Equal(t, "gpt", res.Model)
	assert.Equal(t, "gpt", rw.gotModel)
	assert.Equal(t, true, rw.deadline)

	assert.Equal(t, 1, len(store.saved))
	assert.Equal(t, model.ModeAI, store.saved[0].Mode)
	assert.Equal(t, "gpt", store.saved[0].Model)
}

func TestRewriteAI_Errors(t *testing.T) {
	tests := []struct {
		name   string
		kind   error
		status int
	}{
		{"rate limit", rewrite.ErrRateLimited, http.StatusTooManyRequests},
		{"timeout", rewrite.ErrTimeout, http.StatusGatewayTimeout},
		{"backend", rewrite.ErrBackend, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rw := &fakeRewriter{aiErr: &rewrite.Error{
				Kind:    tt.kind,
				Persona: persona.GlennBeck,
				Model:   "claude",
				Err:     errors.New("upstream"),
			}}
			r := newTestRewriteRouter(rw, nil, nil)

			w := postJSON(r, "/api/rewrite-ai", RewriteRequest{Title: "T", Content: "C", Persona: "glenn_beck"})

			assert.Equal(t, tt.status, w.Code)

			var res map[string]string
			json.Unmarshal(w.Body.Bytes(), &res)
			assert.MatchRegex(t, res["error"], "in glenn_beck style with claude")
		})
	}
}

func TestRewriteContent(t *testing.T) {
	seo := &fakeCompleter{text: "<h1>Fresh Title</h1><p>Opening paragraph.</p><h2>Section</h2><p>More.</p>"}
	r := newTestRewriteRouter(&fakeRewriter{}, nil, seo)

	w := postJSON(r, "/api/rewrite-content", ContentRequest{Title: "Old", Content: "Old body"})

	assert.Equal(t, http.StatusOK, w.Code)

	var res llm.SEOResult
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "Fresh Title", res.Title)
	assert.Equal(t, "Opening paragraph.", res.MetaDescription)
}

func TestRewriteContent_NotConfigured(t *testing.T) {
	r := newTestRewriteRouter(&fakeRewriter{}, nil, nil)

	w := postJSON(r, "/api/rewrite-content", ContentRequest{Title: "Old", Content: "Old body"})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRewriteContent_UpstreamError(t *testing.T) {
	seo := &fakeCompleter{err: errors.New("boom")}
	r := newTestRewriteRouter(&fakeRewriter{}, nil, seo)

	w := postJSON(r, "/api/rewrite-content", ContentRequest{Title: "Old", Content: "Old body"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetPersonas(t *testing.T) {
	r := newTestRewriteRouter(&fakeRewriter{}, nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/personas", nil)
	r.ServeHTTP(w, req)

	var res PersonasResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 6, len(res.Personas))
	assert.Equal(t, "rush_limbaugh", res.Default)
	assert.Equal(t, []string{"claude", "gpt"}, res.Models)
}

func TestGetRewrites(t *testing.T) {
	store := &fakeRewriteStore{
		rewrites: []model.Rewrite{{
			ID:        "01J0000000000000000000000",
			Persona:   "larry_elder",
			Mode:      model.ModeRule,
			Title:     "A title",
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}},
		total: 1,
	}
	r := newTestRewriteRouter(&fakeRewriter{}, store, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/rewrites?limit=500&offset=-3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res RewriteListResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, 100, res.Limit)
	assert.Equal(t, 0, res.Offset)
	assert.Equal(t, "2024-05-01T12:00:00Z", res.Rewrites[0].CreatedAt)
}

func TestGetRewrites_DBError(t *testing.T) {
	store := &fakeRewriteStore{err: errors.New("DB down")}
	r := newTestRewriteRouter(&fakeRewriter{}, store, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/rewrites", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
