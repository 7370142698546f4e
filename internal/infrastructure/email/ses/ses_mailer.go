// Package ses envía recibos por correo con Amazon SES v2.
package ses

import (
	"context"
	"fmt"
	"html"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/jhoicas/isp-cobros/internal/application/receipts"
	"github.com/jhoicas/isp-cobros/pkg/config"
)

var _ receipts.ReceiptMailer = (*Mailer)(nil)

// Mailer implementa receipts.ReceiptMailer.
type Mailer struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewMailer crea el cliente SES con la región y el remitente configurados.
func NewMailer(ctx context.Context, cfg config.SESConfig) (*Mailer, error) {
	if cfg.FromAddress == "" {
		return nil, fmt.Errorf("ses: remitente requerido")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("ses: cargar configuración aws: %w", err)
	}
	var opts []func(*sesv2.Options)
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *sesv2.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	return &Mailer{
		client:      sesv2.NewFromConfig(awsCfg, opts...),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}, nil
}

// SendReceipt envía el recibo. El texto va tal cual y la versión HTML lo
// envuelve en <pre> para conservar las columnas.
func (m *Mailer) SendReceipt(ctx context.Context, msg receipts.ReceiptEmail) error {
	from := m.fromAddress
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.fromAddress)
	}
	htmlBody := buildReceiptHTML(msg.Body)

	_, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(msg.Subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody, Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(msg.Body), Charset: aws.String("UTF-8")},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReceiptHTML(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <pre style="font-family: 'Courier New', monospace; font-size: 13px; line-height: 1.3;">%s</pre>
</body>
</html>`, html.EscapeString(body))
}
