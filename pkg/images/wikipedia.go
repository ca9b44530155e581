package images

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	wikipediaAPI     = "https://en.wikipedia.org/w/api.php"
	wikipediaPages   = "https://en.wikipedia.org/wiki/"
	wikipediaLicense = "Wikipedia content is available under CC BY-SA 3.0 unless otherwise noted."
	searchLimit      = 3
)

type Wikipedia struct {
	httpClient *http.Client
	apiURL     string
	wikiURL    string
}

func (w *Wikipedia) Name() string { return "Wikipedia" }

// Find searches the top articles for the query and returns the first image
// that is not an SVG, logo, icon, map or Getty picture.
func (w *Wikipedia) Find(ctx context.Context, query string) (*Image, error) {
	var search struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	err := w.get(ctx, url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {fmt.Sprint(searchLimit)},
		"format":   {"json"},
	}, &search)
	if err != nil {
		return nil, err
	}
	if len(search.Query.Search) == 0 {
		return nil, fmt.Errorf("wikipedia: no articles for %q", query)
	}

	for _, hit := range search.Query.Search {
		urls, err := w.pageImages(ctx, hit.Title)
		if err != nil {
			continue
		}
		for _, u := range urls {
			if suitable(u) {
				return &Image{
					URL:       u,
					Source:    w.Name(),
					PageTitle: hit.Title,
					PageURL:   w.wikiURL + url.PathEscape(strings.ReplaceAll(hit.Title, " ", "_")),
					License:   wikipediaLicense,
				}, nil
			}
		}
	}
	return nil, fmt.Errorf("wikipedia: no suitable images for %q", query)
}

func (w *Wikipedia) pageImages(ctx context.Context, title string) ([]string, error) {
	var res struct {
		Query struct {
			Pages map[string]struct {
				ImageInfo []struct {
					URL string `json:"url"`
				} `json:"imageinfo"`
			} `json:"pages"`
		} `json:"query"`
	}
	err := w.get(ctx, url.Values{
		"action":    {"query"},
		"titles":    {title},
		"generator": {"images"},
		"prop":      {"imageinfo"},
		"iiprop":    {"url"},
		"format":    {"json"},
	}, &res)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, p := range res.Query.Pages {
		for _, info := range p.ImageInfo {
			urls = append(urls, info.URL)
		}
	}
	return urls, nil
}

func (w *Wikipedia) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("wikipedia request: %w", err)
	}
	req.Header.Set("User-Agent", "ContentSoftware/1.0")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wikipedia fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia fetch: HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("wikipedia decode: %w", err)
	}
	return nil
}

func suitable(u string) bool {
	lower := strings.ToLower(u)
	if strings.HasSuffix(lower, ".svg") {
		return false
	}
	for _, bad := range []string{"logo", "icon", "map", "getty"} {
		if strings.Contains(lower, bad) {
			return false
		}
	}
	return true
}
