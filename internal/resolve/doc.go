// Package resolve turns scraped titles into catalog records via the metadata
// provider.
//
// Resolution never fails outward: provider errors, empty result sets, and
// missing candidate ranks all degrade to an unresolved record carrying the raw
// title and a fallback search link. Batch resolution is the rate-limit
// defense: a fixed concurrency width with a flat pause between batches.
package resolve
