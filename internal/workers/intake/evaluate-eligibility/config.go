// internal/workers/intake/evaluate-eligibility/config.go
package evaluateeligibility

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
