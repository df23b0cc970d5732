// internal/workers/intake/render-outcome/config.go
package renderoutcome

import "time"

type Config struct {
	Timeout time.Duration
	// ReferralManager is the first name used in the referral email greeting.
	ReferralManager string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:         30 * time.Second,
		ReferralManager: "Karen",
	}
}
