package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer delivers mail through a single SMTP relay. Delivery is
// fire-and-forget from the consumer's point of view; a failed send is
// retried by the consumer runner, not here.
type SMTPMailer struct {
	log      logger.Logger
	addr     string
	from     string
	username string
	password string
	host     string
}

func NewSMTPMailer(log logger.Logger, host string, port int, from, username, password string) *SMTPMailer {
	return &SMTPMailer{
		log:      log,
		addr:     fmt.Sprintf("%s:%d", host, port),
		from:     from,
		username: username,
		password: password,
		host:     host,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	const op = "mailer.SMTPMailer.Send"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		m.log.Error(op, logger.String("to", to), logger.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}

	m.log.InfoContext(ctx, op, logger.String("to", to), logger.String("subject", subject))

	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
