package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/crewlabs/crew-backend-go/internal/config"
)

const maxRetries = 3

// InvitationMessage carries whichever credentials apply to the chosen
// delivery method. Empty fields are omitted from the message body.
type InvitationMessage struct {
	TeamName  string
	MagicLink string
	OTPCode   string
	ExpiresAt time.Time
}

// Mailer is the delivery collaborator for invitation emails. Implementations
// must be safe to call after the invitation record is committed; a failure
// here never rolls the invitation back.
type Mailer interface {
	SendInvitation(to string, msg InvitationMessage) error
}

// NewMailer picks the SMTP mailer when a host is configured, otherwise the
// log mailer.
func NewMailer(cfg config.SMTPConfig) Mailer {
	if cfg.Host == "" {
		return &logMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

type smtpMailer struct {
	cfg config.SMTPConfig
}

func (m *smtpMailer) SendInvitation(to string, msg InvitationMessage) error {
	subject := fmt.Sprintf("Invitation to join %s", msg.TeamName)
	return m.send(to, subject, buildInvitationBody(msg))
}

func buildInvitationBody(msg InvitationMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You have been invited to join %s.\r\n\r\n", msg.TeamName)
	if msg.MagicLink != "" {
		fmt.Fprintf(&b, "Click here to accept: %s\r\n\r\n", msg.MagicLink)
	}
	if msg.OTPCode != "" {
		fmt.Fprintf(&b, "Your OTP code is: %s\r\n\r\n", msg.OTPCode)
	}
	fmt.Fprintf(&b, "This invitation expires on %s.\r\n", msg.ExpiresAt.Format(time.RFC1123))
	return b.String()
}

func (m *smtpMailer) send(to, subject, body string) error {
	headers := fmt.Sprintf("From: %s <%s>\r\n", m.cfg.FromName, m.cfg.From)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Exponential backoff: 1s, 2s, 4s
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

// logMailer writes invitations to the application log instead of sending
// mail. Used in development and whenever SMTP is not configured.
type logMailer struct{}

func (m *logMailer) SendInvitation(to string, msg InvitationMessage) error {
	slog.Info("Invitation generated",
		"email", to,
		"team", msg.TeamName,
		"magic_link", msg.MagicLink,
		"otp_code", msg.OTPCode,
		"expires_at", msg.ExpiresAt,
	)
	return nil
}
