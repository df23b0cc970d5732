// internal/workers/intake/record-submission/config.go
package recordsubmission

import "time"

type Config struct {
	Timeout time.Duration
	// HistoryIndex is the Elasticsearch index receiving history documents.
	HistoryIndex string
	// RecentCacheKey is the Redis key invalidated after every insert.
	RecentCacheKey string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:        30 * time.Second,
		HistoryIndex:   "submission-history",
		RecentCacheKey: "submission-history:recent",
	}
}
