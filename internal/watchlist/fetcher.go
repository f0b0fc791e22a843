package watchlist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageFetcher returns the ordered entry labels for one watchlist page.
type PageFetcher interface {
	FetchPage(ctx context.Context, page int) ([]string, error)
}

// HTTPFetcher loads watchlist pages over HTTP and extracts entry labels with a
// CSS selector. Page zero is the base URL; later pages append "page/N/" the
// way letterboxd-style listings paginate.
type HTTPFetcher struct {
	baseURL   string
	selector  string
	attribute string
	client    *http.Client
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// NewHTTPFetcher creates a page fetcher for the given watchlist URL. The
// selector matches one element per entry; attribute names the attribute
// holding the label, or empty to use the element text.
func NewHTTPFetcher(baseURL, selector, attribute string, timeout time.Duration, opts ...FetcherOption) (*HTTPFetcher, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("watchlist url required")
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, errors.New("entry selector required")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	f := &HTTPFetcher{
		baseURL:   baseURL,
		selector:  selector,
		attribute: strings.TrimSpace(attribute),
		client:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// FetchPage downloads one page and returns its entry labels in document order.
func (f *HTTPFetcher) FetchPage(ctx context.Context, page int) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.pageURL(page), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page %d returned %d", page, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page %d: %w", page, err)
	}

	var labels []string
	doc.Find(f.selector).Each(func(_ int, s *goquery.Selection) {
		var label string
		if f.attribute != "" {
			label, _ = s.Attr(f.attribute)
		} else {
			label = s.Text()
		}
		label = strings.TrimSpace(label)
		if label != "" {
			labels = append(labels, label)
		}
	})
	return labels, nil
}

func (f *HTTPFetcher) pageURL(page int) string {
	if page <= 0 {
		return f.baseURL
	}
	return fmt.Sprintf("%spage/%d/", f.baseURL, page+1)
}
