package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailNotifier delivers over SMTP. Without a configured host it degrades
// to logging the message, so local runs do not need a mail server.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailNotifier(cfg SMTPConfig) *EmailNotifier {
	n := &EmailNotifier{from: cfg.From}
	if cfg.Host != "" {
		n.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return n
}

func (n *EmailNotifier) Send(ctx context.Context, msg Message) (Result, error) {
	id := uuid.NewString()

	if n.dialer == nil {
		log.Info().
			Str("recipient", msg.Recipient).
			Str("subject", msg.Subject).
			Msg("smtp not configured, email logged only")
		return Result{MessageID: id}, nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return Result{}, err
	}

	return Result{MessageID: id}, nil
}
