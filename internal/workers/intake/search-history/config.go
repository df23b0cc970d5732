// internal/workers/intake/search-history/config.go
package searchhistory

import "time"

type Config struct {
	Timeout time.Duration
	// HistoryIndex is the Elasticsearch index holding history documents.
	HistoryIndex string
	// RecentCacheKey caches the unfiltered first page of results.
	RecentCacheKey string
	// CacheTTL bounds staleness of the cached recent listing.
	CacheTTL time.Duration
	// DefaultPageSize applies when the request does not set one.
	DefaultPageSize int
	// MaxPageSize caps a requested page size.
	MaxPageSize int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:         30 * time.Second,
		HistoryIndex:    "submission-history",
		RecentCacheKey:  "submission-history:recent",
		CacheTTL:        5 * time.Minute,
		DefaultPageSize: 20,
		MaxPageSize:     100,
	}
}
