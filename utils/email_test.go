package utils

import (
	"testing"
)

func TestLoadMailConfig(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("EMAIL_USER", "noreply@example.com")
	t.Setenv("EMAIL_PASS", "secret")

	cfg := loadMailConfig()
	if cfg.host != "smtp.example.com" {
		t.Errorf("host got = %q, want smtp.example.com", cfg.host)
	}
	if cfg.port != 587 {
		t.Errorf("port got = %d, want 587", cfg.port)
	}
	if cfg.user != "noreply@example.com" {
		t.Errorf("user got = %q, want noreply@example.com", cfg.user)
	}
	if cfg.pass != "secret" {
		t.Errorf("pass got = %q, want secret", cfg.pass)
	}
}

func TestLoadMailConfigBadPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-port")

	cfg := loadMailConfig()
	if cfg.port != 0 {
		t.Errorf("port got = %d, want 0 for unparsable SMTP_PORT", cfg.port)
	}
}
