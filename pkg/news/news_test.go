package news

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/assert/v2"
)

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}

func TestFinnHubFetch(t *testing.T) {
	payload := []map[string]interface{}{
		{
			"category": "top news",
			"datetime": 1772103720,
			"headline": "Fed Holds Rates Steady",
			"id":       7001,
			"related":  "SPY,TLT",
			"source":   "Reuters",
			"summary":  "The Federal Reserve kept interest rates unchanged.",
			"url":      "https://example.com/fed-rates",
		},
		{
			"headline": "No link",
			"id":       7002,
		},
		{
			"headline": "Second",
			"id":       7003,
			"url":      "https://example.com/second",
		},
	}

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	httpClient := srv.Client()
	httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}
	client := newFinnHubClient("test-key", httpClient)

	articles, err := client.Fetch(context.Background(), 1)

	assert.Equal(t, nil, err)
	assert.Equal(t, "/api/v1/news", gotPath)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "7001", a.ExternalID)
	assert.Equal(t, "Fed Holds Rates Steady", a.Headline)
	assert.Equal(t, "The Federal Reserve kept interest rates unchanged.", a.Detail)
	assert.Equal(t, "Reuters", a.Publisher)
	assert.Equal(t, "FinnHub", a.Source)
	assert.Equal(t, []string{"SPY", "TLT"}, a.Symbols)
	assert.Equal(t, int64(1772103720), a.PublishedAt.Unix())

	all, err := client.Fetch(context.Background(), 0)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(all))
}

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Town Herald</title>
  <link>https://herald.example.com</link>
  <item>
    <title> Council approves budget </title>
    <link>https://herald.example.com/budget</link>
    <guid>budget-2026</guid>
    <description>The council approved the budget.</description>
    <category>local</category>
    <pubDate>Mon, 12 Oct 2026 09:00:00 GMT</pubDate>
  </item>
  <item>
    <title>No link here</title>
  </item>
  <item>
    <title>Bridge reopens</title>
    <link>https://herald.example.com/bridge</link>
  </item>
</channel>
</rss>`

func TestFeedFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	defer srv.Close()

	client := NewFeedClient(srv.URL + "/feed.xml")
	articles, err := client.Fetch(context.Background(), 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "budget-2026", a.ExternalID)
	assert.Equal(t, "Council approves budget", a.Headline)
	assert.Equal(t, "The council approved the budget.", a.Detail)
	assert.Equal(t, "Town Herald", a.Publisher)
	assert.Equal(t, "RSS", a.Source)
	assert.Equal(t, []string{"local"}, a.Symbols)
	assert.Equal(t, time.October, a.PublishedAt.Month())

	b := articles[1]
	assert.Equal(t, "https://herald.example.com/bridge", b.ExternalID)
	assert.Equal(t, []string{}, b.Symbols)
}

const testPage = `<html><head>
<title> Council Approves Budget | Town Herald </title>
<meta name="description" content="The town budget passed on Tuesday.">
</head><body>
<nav>Home | News | Sports</nav>
<article>
<h1>Council Approves Budget</h1>
<p>The city council approved the new budget on Tuesday evening after a long debate that stretched well past midnight and drew a large crowd of residents.</p>
<p>Supporters said the plan funds road repairs, two new parks and a modest raise for teachers, while critics warned that property taxes would rise again next year.</p>
<p>The mayor is expected to sign the measure later this week, and the new spending takes effect at the start of the fiscal year in January.</p>
</article>
<footer>Copyright Town Herald</footer>
</body></html>`

func TestPageFetch(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(testPage))
	}))
	defer srv.Close()

	page, err := NewPageFetcher(5*time.Second).Fetch(context.Background(), srv.URL+"/budget")

	assert.Equal(t, nil, err)
	assert.Equal(t, userAgent, gotUA)
	assert.Equal(t, "Council Approves Budget | Town Herald", page.Title)
	assert.Equal(t, "The town budget passed on Tuesday.", page.MetaDescription)
	assert.Equal(t, srv.URL+"/budget", page.URL)
	assert.Equal(t, true, strings.Contains(page.Content, "approved the new budget"))
}

func TestPageFetch_Errors(t *testing.T) {
	f := NewPageFetcher(time.Second)

	_, err := f.Fetch(context.Background(), "not a url")
	assert.Equal(t, true, errors.Is(err, ErrInvalidURL))

	_, err = f.Fetch(context.Background(), "ftp://example.com/file")
	assert.Equal(t, true, errors.Is(err, ErrInvalidURL))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err = f.Fetch(context.Background(), srv.URL)
	assert.NotEqual(t, nil, err)
}

func TestFallbackContent(t *testing.T) {
	long := strings.Repeat("word ", 30)
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "main container",
			html: `<body><div id="main"> Inside main </div><p>other</p></body>`,
			want: "Inside main",
		},
		{
			name: "long paragraphs",
			html: `<body><p>short</p><p>` + long + `</p></body>`,
			want: strings.TrimSpace(long) + "\n\n",
		},
		{
			name: "body text",
			html: `<body><div> just text </div></body>`,
			want: "just text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			assert.Equal(t, nil, err)
			assert.Equal(t, tt.want, fallbackContent(doc))
		})
	}
}
