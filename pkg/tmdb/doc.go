// Package tmdb is a minimal client for The Movie Database search and
// details endpoints. Every call goes to the network; nothing is cached.
package tmdb
