// internal/workers/documents/parse-acord/config.go
package parseacord

import "time"

type Config struct {
	Timeout time.Duration
	// MaxDocumentBytes rejects oversized uploads before decoding.
	MaxDocumentBytes int
}

func LoadConfig() *Config {
	return &Config{
		Timeout:          60 * time.Second,
		MaxDocumentBytes: 20 << 20,
	}
}
