package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
)

// SendMailFunc matches smtp.SendMail.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPRelay delivers submissions through an SMTP account. It backs the
// host's self-hosted relay endpoint; the identifiers it receives are
// checked by the endpoint, not here.
type SMTPRelay struct {
	cfg      config.SMTPConfig
	sendMail SendMailFunc
	logger   *zap.Logger
}

// NewSMTPRelay returns a relay for cfg. A nil sendMail uses smtp.SendMail.
func NewSMTPRelay(cfg config.SMTPConfig, sendMail SendMailFunc, logger *zap.Logger) *SMTPRelay {
	if sendMail == nil {
		sendMail = smtp.SendMail
	}
	return &SMTPRelay{cfg: cfg, sendMail: sendMail, logger: logging.OrNop(logger)}
}

// Send implements Relay.
func (r *SMTPRelay) Send(ctx context.Context, _, _ string, form Form, _ string) error {
	if !r.cfg.Enabled() {
		return errors.New("SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sub := FromValues(form.Values())
	msg := ComposeMessage(r.cfg.To, r.cfg.User, sub)
	auth := smtp.PlainAuth("", r.cfg.User, r.cfg.Pass, r.cfg.Host)

	if err := r.sendMail(r.cfg.Host+":"+r.cfg.Port, auth, r.cfg.User, []string{r.cfg.To}, msg); err != nil {
		r.logger.Error("error sending email", zap.Error(err))
		return fmt.Errorf("smtp send: %w", err)
	}

	r.logger.Info("email sent", zap.String("from_name", sub.Name), zap.String("from_email", sub.Email))
	return nil
}

var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

// ComposeMessage renders a submission as an RFC 822 message.
func ComposeMessage(to, from string, sub Submission) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe.Replace(sub.Subject))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, sub.Name, sub.Email, sub.Subject, sub.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe.Replace(sub.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
