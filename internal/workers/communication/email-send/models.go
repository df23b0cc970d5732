// internal/workers/communication/email-send/models.go
package emailsend

import (
	"context"
	"time"

	"clearance-workers/internal/common/logger"
)

type Input struct {
	To      []string `json:"to"`
	CC      []string `json:"cc,omitempty"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

type Output struct {
	MessageID string    `json:"messageId,omitempty"`
	SentAt    time.Time `json:"sentAt"`
	DryRun    bool      `json:"dryRun,omitempty"`
}

// EmailSender is satisfied by aws.SESClient.
type EmailSender interface {
	SendText(ctx context.Context, from string, to []string, cc []string, subject, body string) (string, error)
}

type ServiceDependencies struct {
	Sender EmailSender
	Logger logger.Logger
}
