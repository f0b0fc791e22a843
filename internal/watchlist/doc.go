// Package watchlist fetches the paginated watchlist and extracts entry titles.
//
// The scraper walks pages sequentially under a hard page cap, stopping as soon
// as the listing repeats the previous page's first entry (a wrapped or stalled
// collection). Individual page failures degrade to empty pages; partial data
// beats no data for a best-effort background job.
package watchlist
