package port

import "context"

// EmailSender delivers transactional mail to applicants.
type EmailSender interface {
	SendApplicationReceived(ctx context.Context, toEmail, toName, productName, reference string) error
}
