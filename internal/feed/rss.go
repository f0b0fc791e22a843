package feed

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"

	"reelfeed/internal/catalog"
	"reelfeed/internal/fileutil"
	"reelfeed/internal/slug"
)

// guidNamespace scopes generated entry identifiers to this application.
var guidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://reelfeed.invalid/guid"))

// Writer renders record sets as an RSS 2.0 feed.
type Writer struct {
	title       string
	link        string
	description string
}

// NewWriter creates a feed writer with the given channel metadata.
func NewWriter(title, link, description string) *Writer {
	return &Writer{title: title, link: link, description: description}
}

// Render produces the RSS document for the record set.
func (w *Writer) Render(records []catalog.Record, now time.Time) (string, error) {
	rss := &feeds.RssFeed{
		Title:         w.title,
		Link:          w.link,
		Description:   w.description,
		LastBuildDate: now.Format(time.RFC1123Z),
	}
	for _, rec := range records {
		rss.Items = append(rss.Items, &feeds.RssItem{
			Title: EntryTitle(rec),
			Link:  rec.SearchURL,
			Guid:  &feeds.RssGuid{Id: EntryID(rec), IsPermaLink: "false"},
		})
	}
	return feeds.ToXML(rss)
}

// WriteFile renders the feed and writes it atomically to path.
func (w *Writer) WriteFile(path string, records []catalog.Record, now time.Time) error {
	xml, err := w.Render(records, now)
	if err != nil {
		return fmt.Errorf("render feed: %w", err)
	}
	if err := fileutil.WriteAtomic(path, []byte(xml), 0o644); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}
	return nil
}

// EntryTitle formats a record's display title, appending the release year
// when one is known.
func EntryTitle(rec catalog.Record) string {
	if rec.ReleaseYear > 0 {
		return fmt.Sprintf("%s (%d)", rec.Title, rec.ReleaseYear)
	}
	return rec.Title
}

// EntryID derives the stable entry identifier: a name-based UUID over the
// provider id when resolved, else over the title's slug. The same record
// yields the same guid on every run.
func EntryID(rec catalog.Record) string {
	var key string
	if rec.Resolved() {
		key = "id:" + strconv.FormatInt(rec.ID, 10)
	} else {
		key = "title:" + slug.Normalize(rec.Title)
	}
	return uuid.NewSHA1(guidNamespace, []byte(key)).String()
}
