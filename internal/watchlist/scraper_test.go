package watchlist

import (
	"context"
	"errors"
	"slices"
	"testing"
)

type stubFetcher struct {
	pages map[int][]string
	errs  map[int]error
	calls []int
}

func (f *stubFetcher) FetchPage(ctx context.Context, page int) ([]string, error) {
	f.calls = append(f.calls, page)
	if err, ok := f.errs[page]; ok {
		return nil, err
	}
	return f.pages[page], nil
}

func TestScrapeSinglePage(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]string{
		0: {"Heat", "Inception", "Solaris"},
	}}
	scraper := NewScraper(fetcher, nil)

	got := scraper.Scrape(context.Background())
	if !slices.Equal(got, []string{"Heat", "Inception", "Solaris"}) {
		t.Errorf("got %v", got)
	}
}

func TestScrapeStallDetection(t *testing.T) {
	// Page 1 starts with page 0's first entry: the listing wrapped and
	// page 1's contents must be discarded entirely.
	fetcher := &stubFetcher{pages: map[int][]string{
		0: {"A", "B", "C"},
		1: {"A", "B", "C", "D"},
	}}
	scraper := NewScraper(fetcher, nil)

	got := scraper.Scrape(context.Background())
	if !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("got %v, want [A B C]", got)
	}
}

func TestScrapePartialOverlapStopsMidPage(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]string{
		0: {"A", "B"},
		1: {"X", "A", "Y"},
	}}
	scraper := NewScraper(fetcher, nil)

	got := scraper.Scrape(context.Background())
	if !slices.Equal(got, []string{"A", "B", "X"}) {
		t.Errorf("got %v, want [A B X]", got)
	}
}

func TestScrapeMultiplePages(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]string{
		0: {"A", "B"},
		1: {"C", "D"},
		2: {"E"},
	}}
	scraper := NewScraper(fetcher, nil)

	got := scraper.Scrape(context.Background())
	if !slices.Equal(got, []string{"A", "B", "C", "D", "E"}) {
		t.Errorf("got %v", got)
	}
}

func TestScrapePageCap(t *testing.T) {
	pages := make(map[int][]string)
	for i := 0; i < 20; i++ {
		pages[i] = []string{string(rune('a' + i))}
	}
	fetcher := &stubFetcher{pages: pages}
	scraper := NewScraper(fetcher, nil)

	got := scraper.Scrape(context.Background())
	if len(got) != maxPages {
		t.Errorf("got %d titles, want %d (hard page cap)", len(got), maxPages)
	}
	if len(fetcher.calls) != maxPages {
		t.Errorf("fetched %d pages, want %d", len(fetcher.calls), maxPages)
	}
}

func TestScrapeFailedPageTreatedAsEmpty(t *testing.T) {
	fetcher := &stubFetcher{
		pages: map[int][]string{
			0: {"A"},
			2: {"B"},
		},
		errs: map[int]error{1: errors.New("boom")},
	}
	scraper := NewScraper(fetcher, nil)

	got := scraper.Scrape(context.Background())
	if !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("got %v, want [A B] (failed page skipped, scan continues)", got)
	}
}

func TestScrapeCollapsesExactDuplicates(t *testing.T) {
	fetcher := &stubFetcher{pages: map[int][]string{
		0: {"A", "B", "B"},
		1: {"C", "A"},
	}}
	scraper := NewScraper(fetcher, nil)

	got := scraper.Scrape(context.Background())
	// The second "A" on page 1 matches page 0's first entry and stops the scan.
	if !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("got %v, want [A B C]", got)
	}
}

func TestScrapeAllPagesFailing(t *testing.T) {
	fetcher := &stubFetcher{errs: map[int]error{
		0: errors.New("down"), 1: errors.New("down"), 2: errors.New("down"),
		3: errors.New("down"), 4: errors.New("down"), 5: errors.New("down"),
	}}
	scraper := NewScraper(fetcher, nil)

	if got := scraper.Scrape(context.Background()); len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
