// Package mail dispatches operator notifications over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"inador/config"
	"inador/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/go-mail/mail/v2"
)

type smtpMailer struct {
	dialer        *gomail.Dialer
	from          string
	operatorEmail string
	logger        *slog.Logger
}

// NewSMTPMailer creates a MailService that delivers over SMTP. A missing
// host yields a nil service so notifications are skipped cleanly.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) service.MailService {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Warn("SMTP not configured, mail notifications disabled")

		return nil
	}

	dialer := gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)

	return &smtpMailer{
		dialer:        dialer,
		from:          cfg.Mail.From,
		operatorEmail: cfg.Mail.OperatorEmail,
		logger:        logger,
	}
}

// SendStarterForm notifies the operator of a submitted starter form.
func (m *smtpMailer) SendStarterForm(_ context.Context, mail *service.StarterFormMail) error {
	var body strings.Builder
	fmt.Fprintf(&body, "A starter form was submitted.\n\n")
	fmt.Fprintf(&body, "Email: %s\n", mail.UserEmail)
	fmt.Fprintf(&body, "Phone: %s\n", mail.UserPhone)
	fmt.Fprintf(&body, "UID: %s\n", mail.UID)

	return m.send("New starter form submission", body.String())
}

// SendSiteRequest notifies the operator of a site-generation request.
func (m *smtpMailer) SendSiteRequest(_ context.Context, mail *service.SiteRequestMail) error {
	var body strings.Builder
	fmt.Fprintf(&body, "A site-generation request was submitted.\n\n")
	fmt.Fprintf(&body, "Request ID: %s\n", mail.RequestID)
	fmt.Fprintf(&body, "Account: %s\n", mail.AccountID)
	fmt.Fprintf(&body, "Email: %s\n", mail.Email)
	fmt.Fprintf(&body, "Vision: %s\n\n", mail.Vision)

	keys := make([]string, 0, len(mail.Answers))
	for key := range mail.Answers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&body, "%s: %s\n", key, mail.Answers[key])
	}

	return m.send(fmt.Sprintf("Site request %s", mail.RequestID), body.String())
}

func (m *smtpMailer) send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.operatorEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Info("Mail sent", slog.String("subject", subject))

	return nil
}
