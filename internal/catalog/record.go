package catalog

import (
	"fmt"
	"net/url"

	"reelfeed/internal/slug"
)

// Record is the canonical unit of output. Exactly one of two shapes holds:
// resolved (ID non-zero, metadata populated, title canonicalized by the
// provider) or unresolved (ID zero, title equal to the raw scraped string,
// metadata fields absent). SearchURL is always populated.
type Record struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date,omitempty"`
	ReleaseYear int    `json:"release_year,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	// DateAdded is epoch milliseconds of when the record first entered the
	// cache. Preserved across runs for records that persist.
	DateAdded int64  `json:"date_added"`
	SearchURL string `json:"search_url"`
}

// Resolved reports whether the record carries a provider identity.
func (r Record) Resolved() bool { return r.ID != 0 }

// Key returns the record's comparison key.
func (r Record) Key() string { return slug.Normalize(r.Title) }

// SearchURL builds the deterministic fallback lookup URL for a title. Year is
// appended to the query when known (canonical titles after resolution); zero
// means title-only (raw titles before resolution).
func SearchURL(title string, year int) string {
	query := title
	if year > 0 {
		query = fmt.Sprintf("%s %d", title, year)
	}
	params := url.Values{}
	params.Set("query", query)
	return "https://www.themoviedb.org/search?" + params.Encode()
}

// Snapshot is the serialized shape of both the cache file and the diagnostics
// file: a generation timestamp (epoch milliseconds) plus an ordered record set.
type Snapshot struct {
	Generated int64    `json:"generated"`
	Data      []Record `json:"data"`
}
