package services

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/darlculus/franciscancatholicschool-sub001/app/config"
	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

// Mailer dispatches a pre-filled receipt email draft.
type Mailer interface {
	Send(draft *models.EmailDraft) error
}

// ConsoleMailer logs drafts instead of sending them. Default when no SMTP
// credentials are configured.
type ConsoleMailer struct{}

var _ Mailer = (*ConsoleMailer)(nil)

func (m *ConsoleMailer) Send(draft *models.EmailDraft) error {
	log.Printf("---- receipt email (not sent) ----\nTo: %s\nSubject: %s\n\n%s\n----------------------------------",
		draft.To, draft.Subject, draft.Body)
	return nil
}

// SMTPMailer sends drafts through the school's configured SMTP account.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(draft *models.EmailDraft) error {
	if draft.To == "" {
		return fmt.Errorf("no recipient address on email draft")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s",
		m.cfg.From, draft.To, draft.Subject, draft.Body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{draft.To}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send receipt email: %w", err)
	}
	return nil
}

// NewMailer picks the SMTP mailer when credentials are configured and the
// console mailer otherwise.
func NewMailer(cfg config.SMTPConfig) Mailer {
	if cfg.Username != "" && cfg.Password != "" {
		return NewSMTPMailer(cfg)
	}
	return &ConsoleMailer{}
}
