// internal/workers/intake/derive-documents/config.go
package derivedocuments

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
