package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer sends seller-facing notification email. Implementations are
// best-effort: callers log and swallow errors, a failed send never rolls
// back a state transition.
type Mailer interface {
	SendVerificationResult(to, businessName, status, reason string) error
}

// SMTPMailer sends mail through the SMTP server configured in the
// environment (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS).
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
}

// NewSMTPMailer reads SMTP settings from environment variables. Missing
// settings are logged; sends will then fail and be swallowed upstream.
func NewSMTPMailer() *SMTPMailer {
	port := smtpPort(os.Getenv("SMTP_PORT"))

	m := &SMTPMailer{
		host: os.Getenv("SMTP_HOST"),
		port: port,
		user: os.Getenv("SMTP_USER"),
		pass: os.Getenv("SMTP_PASS"),
	}
	if m.host == "" || m.user == "" {
		log.Printf("Warning: SMTP not fully configured, verification emails will not be delivered")
	}
	return m
}

// smtpPort parses SMTP_PORT, falling back to 2525 when unset or invalid.
func smtpPort(raw string) int {
	if raw == "" {
		return 2525
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid SMTP_PORT %q, using default 2525: %v", raw, err)
		return 2525
	}
	return port
}

// SendVerificationResult emails a seller the outcome of the admin review.
func (m *SMTPMailer) SendVerificationResult(to, businessName, status, reason string) error {
	var subject, body string
	if status == "active" {
		subject = "Your seller account has been approved"
		body = fmt.Sprintf("Dear %s,\n\nYour seller account has been approved. You can now list products on BuildBasket.\n\nBest regards,\nBuildBasket Team", businessName)
	} else {
		subject = "Your seller account application was rejected"
		body = fmt.Sprintf("Dear %s,\n\nYour seller account application was rejected.\nReason: %s\n\nBest regards,\nBuildBasket Team", businessName, reason)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.user)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
