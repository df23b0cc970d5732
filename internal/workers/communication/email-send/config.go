// internal/workers/communication/email-send/config.go
package emailsend

import "time"

type Config struct {
	Timeout time.Duration
	// FromEmail is the verified SES sender identity.
	FromEmail string
	// DryRun logs the email instead of sending it. Used in environments
	// without SES credentials.
	DryRun bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		FromEmail: "submissions@example.com",
	}
}
