package watchlist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"
)

const pageHTML = `<!doctype html>
<html><body>
<ul>
	<li class="poster-container"><img alt="Heat"></li>
	<li class="poster-container"><img alt="  Inception  "></li>
	<li class="poster-container"><img alt=""></li>
	<li class="other"><img alt="Skipped"></li>
</ul>
</body></html>`

func TestFetchPageExtractsAttribute(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(pageHTML))
	}))
	defer server.Close()

	fetcher, err := NewHTTPFetcher(server.URL+"/u/watchlist", "li.poster-container img", "alt", time.Second)
	if err != nil {
		t.Fatalf("NewHTTPFetcher failed: %v", err)
	}

	labels, err := fetcher.FetchPage(context.Background(), 0)
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if !slices.Equal(labels, []string{"Heat", "Inception"}) {
		t.Errorf("labels = %v", labels)
	}
	if gotPath != "/u/watchlist/" {
		t.Errorf("page 0 path = %q", gotPath)
	}
}

func TestFetchPagePaginationPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(pageHTML))
	}))
	defer server.Close()

	fetcher, err := NewHTTPFetcher(server.URL+"/u/watchlist/", "li.poster-container img", "alt", time.Second)
	if err != nil {
		t.Fatalf("NewHTTPFetcher failed: %v", err)
	}

	if _, err := fetcher.FetchPage(context.Background(), 2); err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if gotPath != "/u/watchlist/page/3/" {
		t.Errorf("page 2 path = %q, want /u/watchlist/page/3/", gotPath)
	}
}

func TestFetchPageTextFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<ul><li class="title"> Heat </li><li class="title">Solaris</li></ul>`))
	}))
	defer server.Close()

	fetcher, err := NewHTTPFetcher(server.URL, "li.title", "", time.Second)
	if err != nil {
		t.Fatalf("NewHTTPFetcher failed: %v", err)
	}

	labels, err := fetcher.FetchPage(context.Background(), 0)
	if err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if !slices.Equal(labels, []string{"Heat", "Solaris"}) {
		t.Errorf("labels = %v", labels)
	}
}

func TestFetchPageNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher, err := NewHTTPFetcher(server.URL, "li", "", time.Second)
	if err != nil {
		t.Fatalf("NewHTTPFetcher failed: %v", err)
	}
	if _, err := fetcher.FetchPage(context.Background(), 0); err == nil {
		t.Fatal("expected error for 404 page")
	}
}

func TestNewHTTPFetcherValidation(t *testing.T) {
	if _, err := NewHTTPFetcher("", "li", "", time.Second); err == nil {
		t.Error("expected error for empty url")
	}
	if _, err := NewHTTPFetcher("https://example.com", "", "", time.Second); err == nil {
		t.Error("expected error for empty selector")
	}
}
