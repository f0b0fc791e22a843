// Package feed renders the record set as an RSS 2.0 document.
//
// Entry guids are deterministic and marked non-permalink, and items carry no
// publish date: the date-added timestamp moves during cache merges and must
// not make consumers treat old entries as freshly arrived.
package feed
