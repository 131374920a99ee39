package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendApplicationReceived(ctx context.Context, toEmail, toName, productName, reference string) error {
	subject := "We received your EMI application"
	htmlBody := buildApplicationReceivedHTML(toName, productName, reference)
	textBody := fmt.Sprintf(
		"Hi %s,\n\nWe have received your installment application for %s.\nYour reference number is %s.\n\nOur financing partner will contact you once the application has been reviewed.\n\nFatafat Sewa",
		toName, productName, reference)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildApplicationReceivedHTML(name, productName, reference string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Application received</h2>
  <p>Hi %s,</p>
  <p>We have received your installment application for <strong>%s</strong>.</p>
  <p>Your reference number is <strong>%s</strong>. Keep it handy when talking to our financing partner.</p>
  <p>The partner bank will review your documents and contact you on the phone number you provided.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Fatafat Sewa - Online Shopping in Nepal</p>
</body>
</html>`, name, productName, reference)
}
