// internal/workers/communication/email-send/service.go
package emailsend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clearance-workers/internal/common/errors"
	"clearance-workers/internal/common/logger"
)

type Service struct {
	config *Config
	sender EmailSender
	logger logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	return &Service{
		config: config,
		sender: deps.Sender,
		logger: deps.Logger,
	}
}

func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validateAddresses(input); err != nil {
		return nil, errors.NewValidationFailedError(err.Error())
	}

	if s.config.DryRun {
		s.logger.Info("dry run, email not sent", map[string]interface{}{
			"to":      input.To,
			"subject": input.Subject,
		})
		return &Output{SentAt: time.Now().UTC(), DryRun: true}, nil
	}

	messageID, err := s.sender.SendText(ctx, s.config.FromEmail, input.To, input.CC, input.Subject, input.Body)
	if err != nil {
		return nil, errors.NewEmailSendFailedError(err)
	}

	s.logger.Info("email sent", map[string]interface{}{
		"to":        input.To,
		"subject":   input.Subject,
		"messageId": messageID,
	})

	return &Output{MessageID: messageID, SentAt: time.Now().UTC()}, nil
}

func validateAddresses(input *Input) error {
	for _, addr := range input.To {
		if !isValidEmail(addr) {
			return fmt.Errorf("invalid 'to' email address: %s", addr)
		}
	}
	for _, addr := range input.CC {
		if !isValidEmail(addr) {
			return fmt.Errorf("invalid 'cc' email address: %s", addr)
		}
	}
	return nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return false
	}
	if len(parts[0]) == 0 || len(parts[1]) == 0 {
		return false
	}
	return strings.Contains(parts[1], ".")
}
