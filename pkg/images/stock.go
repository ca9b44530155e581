package images

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

const (
	unsplashBase = "https://source.unsplash.com"
	pixabayBase  = "https://pixabay.com"
)

// Unsplash resolves the featured-photo redirect for a query; the final
// location is the image.
type Unsplash struct {
	httpClient *http.Client
	baseURL    string
}

func (u *Unsplash) Name() string { return "Unsplash" }

func (u *Unsplash) Find(ctx context.Context, query string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.baseURL+"/featured/?"+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("unsplash request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unsplash fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK || resp.Request.URL.String() == req.URL.String() {
		return nil, fmt.Errorf("unsplash: no image for %q", query)
	}

	return &Image{
		URL:         resp.Request.URL.String(),
		Source:      u.Name(),
		License:     "Unsplash photos are freely usable under the Unsplash license",
		Attribution: "Photo from Unsplash",
	}, nil
}

// Pixabay scrapes the first result from the public search page.
type Pixabay struct {
	httpClient *http.Client
	baseURL    string
}

func (p *Pixabay) Name() string { return "Pixabay" }

func (p *Pixabay) Find(ctx context.Context, query string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/images/search/"+url.PathEscape(query)+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("pixabay request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pixabay fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pixabay fetch: HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pixabay parse: %w", err)
	}

	results := doc.Find("img.photo-result-image")
	if results.Length() == 0 {
		return nil, fmt.Errorf("pixabay: no images for %q", query)
	}
	src, ok := results.First().Attr("src")
	if !ok || src == "" {
		return nil, fmt.Errorf("pixabay: could not extract image URL")
	}

	return &Image{
		URL:         src,
		Source:      p.Name(),
		License:     "Pixabay License - Free for commercial use, no attribution required",
		Attribution: "Image from Pixabay",
	}, nil
}
