package passwordreset

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

//go:generate mockgen -source=passwordreset_mailer.go -destination=mock/passwordreset_mailer_mock.go -package=mock

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer delivers plain text mail through go-mail.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("mail client: %w", err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}

// LogMailer writes mail to the log instead of sending it. Used when SMTP is
// not configured.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger ...*zap.Logger) *LogMailer {
	l := zap.L().Named("mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer")
	}
	return &LogMailer{logger: l}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Info("mail not sent, smtp disabled",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}

// NewMailer picks SMTP when a host is configured.
func NewMailer(cfg SMTPConfig, logger *zap.Logger) Mailer {
	if cfg.Host == "" {
		return NewLogMailer(logger)
	}
	return NewSMTPMailer(cfg)
}
