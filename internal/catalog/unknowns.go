package catalog

import (
	"context"
	"log/slog"

	"reelfeed/internal/logging"
)

// Classifier flags ambiguous records after reconciliation: person-type
// matches, unresolved entries, and titles whose slug appears more than once.
// Its output is diagnostic only and is never read back into the cache.
type Classifier struct {
	resolver TitleResolver
	logger   *slog.Logger
}

// NewClassifier creates an unknowns classifier.
func NewClassifier(resolver TitleResolver, logger *slog.Logger) *Classifier {
	return &Classifier{
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, "unknowns"),
	}
}

// Classify partitions the record set into person matches, unresolved matches,
// and slug duplicates, then retries each duplicate at the provider's
// second-ranked candidate. A duplicate is replaced only when the retry lands
// on a different provider id; a failed or identical retry keeps the original.
// A record appears once per category it satisfies.
func (c *Classifier) Classify(ctx context.Context, records []Record) []Record {
	var persons, unresolved, duplicates []Record

	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		if rec.MediaType == "person" {
			persons = append(persons, rec)
		}
		if !rec.Resolved() {
			unresolved = append(unresolved, rec)
		}
		key := rec.Key()
		if seen[key] {
			duplicates = append(duplicates, rec)
		} else {
			seen[key] = true
		}
	}

	duplicates = c.retryDuplicates(ctx, duplicates)

	c.logger.Info("classified records",
		logging.Int("persons", len(persons)),
		logging.Int("unresolved", len(unresolved)),
		logging.Int("duplicates", len(duplicates)))

	out := make([]Record, 0, len(persons)+len(unresolved)+len(duplicates))
	out = append(out, persons...)
	out = append(out, unresolved...)
	out = append(out, duplicates...)
	return out
}

// retryDuplicates re-resolves each duplicate title at candidate rank 1.
func (c *Classifier) retryDuplicates(ctx context.Context, duplicates []Record) []Record {
	if len(duplicates) == 0 {
		return duplicates
	}

	titles := make([]string, len(duplicates))
	for i, rec := range duplicates {
		titles[i] = rec.Title
	}

	retried := c.resolver.ResolveBatch(ctx, titles, 1)
	for i, second := range retried {
		if second.Resolved() && second.ID != duplicates[i].ID {
			c.logger.Debug("duplicate re-resolved to second candidate",
				logging.String("title", duplicates[i].Title),
				logging.Int64("original_id", duplicates[i].ID),
				logging.Int64("replacement_id", second.ID))
			duplicates[i] = second
		}
	}
	return duplicates
}
