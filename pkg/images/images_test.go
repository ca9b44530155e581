package images

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestWikipediaFind_OnlyLogos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		q := r.URL.Query()
		switch {
		case q.Get("list") == "search":
			assert.Equal(t, "golden gate", q.Get("srsearch"))
			w.Write([]byte(`{"query":{"search":[{"title":"Golden Gate Bridge"}]}}`))
		case q.Get("titles") == "Golden Gate Bridge":
			w.Write([]byte(`{"query":{"pages":{
				"-1":{"imageinfo":[{"url":"https://upload.example.org/Bridge_logo.png"}]}
			}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	wp := &Wikipedia{httpClient: srv.Client(), apiURL: srv.URL, wikiURL: "https://en.wikipedia.org/wiki/"}
	_, err := wp.Find(context.Background(), "golden gate")
	assert.NotEqual(t, nil, err)
}

func TestWikipediaFind_SkipsUnsuitable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("list") == "search" {
			w.Write([]byte(`{"query":{"search":[{"title":"Empty Page"},{"title":"Golden Gate Bridge"}]}}`))
			return
		}
		if r.URL.Query().Get("titles") == "Empty Page" {
			w.Write([]byte(`{"query":{}}`))
			return
		}
		w.Write([]byte(`{"query":{"pages":{
			"-1":{"imageinfo":[{"url":"https://upload.example.org/Seal.SVG"}]},
			"-2":{"imageinfo":[{"url":"https://upload.example.org/Getty_bridge.jpg"}]}
		}}}`))
	}))
	defer srv.Close()

	wp := &Wikipedia{httpClient: srv.Client(), apiURL: srv.URL, wikiURL: "https://en.wikipedia.org/wiki/"}
	_, err := wp.Find(context.Background(), "bridge")
	assert.NotEqual(t, nil, err)
}

func TestWikipediaFind_Hit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("list") == "search" {
			w.Write([]byte(`{"query":{"search":[{"title":"Golden Gate Bridge"}]}}`))
			return
		}
		w.Write([]byte(`{"query":{"pages":{"-1":{"imageinfo":[{"url":"https://upload.example.org/GGB_at_dusk.jpg"}]}}}}`))
	}))
	defer srv.Close()

	wp := &Wikipedia{httpClient: srv.Client(), apiURL: srv.URL, wikiURL: "https://en.wikipedia.org/wiki/"}
	img, err := wp.Find(context.Background(), "golden gate")

	assert.Equal(t, nil, err)
	assert.Equal(t, "https://upload.example.org/GGB_at_dusk.jpg", img.URL)
	assert.Equal(t, "Wikipedia", img.Source)
	assert.Equal(t, "Golden Gate Bridge", img.PageTitle)
	assert.Equal(t, "https://en.wikipedia.org/wiki/Golden_Gate_Bridge", img.PageURL)
	assert.Equal(t, wikipediaLicense, img.License)
}

func TestUnsplashFind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/featured/" {
			http.Redirect(w, r, "/photo-123.jpg", http.StatusFound)
			return
		}
		w.Write([]byte("jpeg"))
	}))
	defer srv.Close()

	u := &Unsplash{httpClient: srv.Client(), baseURL: srv.URL}
	img, err := u.Find(context.Background(), "city hall")

	assert.Equal(t, nil, err)
	assert.Equal(t, srv.URL+"/photo-123.jpg", img.URL)
	assert.Equal(t, "Photo from Unsplash", img.Attribution)
}

func TestPixabayFind(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`<html><body>
			<img class="logo" src="/logo.png">
			<img class="photo-result-image" src="https://cdn.pixabay.example/flag.jpg">
			<img class="photo-result-image" src="https://cdn.pixabay.example/second.jpg">
		</body></html>`))
	}))
	defer srv.Close()

	p := &Pixabay{httpClient: srv.Client(), baseURL: srv.URL}
	img, err := p.Find(context.Background(), "flag")

	assert.Equal(t, nil, err)
	assert.Equal(t, "/images/search/flag/", gotPath)
	assert.Equal(t, "https://cdn.pixabay.example/flag.jpg", img.URL)
	assert.Equal(t, "Pixabay", img.Source)
}

type stubSearcher struct {
	name string
	img  *Image
	err  error
}

func (s stubSearcher) Find(context.Context, string) (*Image, error) { return s.img, s.err }
func (s stubSearcher) Name() string                                 { return s.name }

func TestFinder(t *testing.T) {
	boom := errors.New("boom")
	hit := &Image{URL: "u", Source: "second"}

	f := NewFinder(stubSearcher{name: "first", err: boom}, stubSearcher{name: "second", img: hit})
	img, err := f.Find(context.Background(), "q")
	assert.Equal(t, nil, err)
	assert.Equal(t, hit, img)

	f = NewFinder(stubSearcher{name: "first", err: boom})
	_, err = f.Find(context.Background(), "q")
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
	assert.Equal(t, true, errors.Is(err, boom))

	_, err = NewFinder().Find(context.Background(), "q")
	assert.Equal(t, true, errors.Is(err, ErrNotFound))
}

func TestSuitable(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://x/Flag.jpg", true},
		{"https://x/Seal.SVG", false},
		{"https://x/team_logo.png", false},
		{"https://x/Icon.png", false},
		{"https://x/Roadmap.png", false},
		{"https://x/getty-123.jpg", false},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, suitable(tt.url))
		})
	}
}
