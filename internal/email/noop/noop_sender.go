package noop

import (
	"context"
	"log"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
)

type noopSender struct{}

// NewNoopSender returns an EmailSender that only logs. Used in development
// and wherever SES credentials are absent.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendApplicationReceived(_ context.Context, toEmail, toName, productName, reference string) error {
	log.Printf("noopSender: would send application-received email to %s <%s> for %s (ref %s)",
		toName, toEmail, productName, reference)
	return nil
}
