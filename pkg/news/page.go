package news

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	maxPageSize     = 5 << 20
	mainSelector    = "article, .article, .post, .content, main, #content, #main"
	minParagraphLen = 100
)

var ErrInvalidURL = errors.New("invalid URL")

// Page is the readable part of a web article.
type Page struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	MetaDescription string `json:"metaDescription"`
	URL             string `json:"url"`
}

type PageFetcher struct {
	httpClient *http.Client
}

func NewPageFetcher(timeout time.Duration) *PageFetcher {
	return &PageFetcher{httpClient: &http.Client{Timeout: timeout}}
}

// Fetch downloads rawURL and extracts its article text. Readability is tried
// first; pages it cannot parse fall back to the common content containers,
// then to long paragraphs, then to the whole body.
func (f *PageFetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	ctx, span := otel.Tracer("github.com/Click-Movement/ContentSoftware/pkg/news").Start(ctx, "news.fetch_page")
	defer span.End()
	span.SetAttributes(attribute.String("url", rawURL))

	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("page request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("page fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("page fetch: HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("page read: %w", err)
	}

	return extract(raw, parsed)
}

func extract(raw []byte, pageURL *url.URL) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("page parse: %w", err)
	}

	page := &Page{
		Title:           strings.TrimSpace(doc.Find("title").Text()),
		MetaDescription: doc.Find(`meta[name="description"]`).AttrOr("content", ""),
		URL:             pageURL.String(),
	}
	if page.Title == "" {
		page.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	if article, err := readability.FromReader(bytes.NewReader(raw), pageURL); err == nil {
		page.Content = strings.TrimSpace(article.TextContent)
		if page.Title == "" {
			page.Title = article.Title
		}
		if page.MetaDescription == "" {
			page.MetaDescription = article.Excerpt
		}
	}

	if page.Content == "" {
		page.Content = fallbackContent(doc)
	}
	return page, nil
}

func fallbackContent(doc *goquery.Document) string {
	if main := doc.Find(mainSelector); main.Length() > 0 {
		if text := strings.TrimSpace(main.First().Text()); text != "" {
			return text
		}
	}

	var b strings.Builder
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len([]rune(text)) > minParagraphLen {
			b.WriteString(text + "\n\n")
		}
	})
	if b.Len() > 0 {
		return b.String()
	}

	return strings.TrimSpace(doc.Find("body").Text())
}
