package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMTPPort(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"unset uses default", "", 2525},
		{"valid port", "587", 587},
		{"garbage uses default", "five-eight-seven", 2525},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, smtpPort(tt.raw))
		})
	}
}

func TestNewSMTPMailerReadsEnvironment(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "noreply@example.com")
	t.Setenv("SMTP_PASS", "secret")

	m := NewSMTPMailer()
	assert.Equal(t, "smtp.example.com", m.host)
	assert.Equal(t, 465, m.port)
	assert.Equal(t, "noreply@example.com", m.user)
	assert.Equal(t, "secret", m.pass)
}
