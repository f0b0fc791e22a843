// Package tmdb provides the minimal TMDB API client used by title resolution.
//
// It exposes multi search only: the resolver works from ranked candidates and
// normalizes the movie/tv/person field differences itself. Responses are
// strongly typed so resolution can pick candidates by rank. Options allow
// tests to supply custom HTTP clients without modifying production code.
package tmdb
