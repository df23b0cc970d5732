// internal/workers/intake/classify-submission/config.go
package classifysubmission

import "time"

// No per-worker config needed, struct provided for consistency
type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
