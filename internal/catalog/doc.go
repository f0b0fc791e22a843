// Package catalog owns the record model, the on-disk cache, and the
// reconciliation core.
//
// A Record is the canonical unit of output: either resolved (provider id and
// metadata present) or unresolved (id zero, raw scraped title, fallback search
// link). The Reconciler decides when to re-scrape, whether the live listing
// has drifted from the cache, and how to merge fresh resolutions with cached
// records without losing original date-added timestamps. The Classifier is a
// diagnostic post-pass that collects person matches, unresolved entries, and
// slug duplicates, retrying duplicates against the provider's second-ranked
// candidate.
package catalog
