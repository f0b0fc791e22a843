// Package slug derives stable comparison keys from free-text titles.
//
// A slug is the identity used for cache lookups and duplicate detection: two
// titles refer to the same entry exactly when their slugs are equal. The
// transformation is pure, total, and idempotent, so keys survive round trips
// through the cache file unchanged.
package slug
