// Package mail delivers outcome notification emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"
)

const defaultSendTimeout = 15 * time.Second

// Config captures the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPSender sends one email per call over a fresh SMTP session. It holds no
// connection state between sends; a delivery failure affects only that send.
type SMTPSender struct {
	cfg Config
	log zerolog.Logger
}

func NewSMTPSender(cfg Config, log zerolog.Logger) *SMTPSender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultSendTimeout
	}
	return &SMTPSender{cfg: cfg, log: log}
}

// SendOrderOutcome delivers the success or failure template to the given address.
func (s *SMTPSender) SendOrderOutcome(ctx context.Context, to string, success bool) error {
	subject, body := outcomeTemplate(success)

	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(s.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	s.log.Debug().Str("subject", subject).Msg("outcome email sent")
	return nil
}
