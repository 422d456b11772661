package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darlculus/franciscancatholicschool-sub001/app/config"
	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

func TestNewMailerSelection(t *testing.T) {
	mailer := NewMailer(config.SMTPConfig{})
	assert.IsType(t, &ConsoleMailer{}, mailer)

	mailer = NewMailer(config.SMTPConfig{
		Host:     "smtp.gmail.com",
		Port:     "587",
		Username: "bursary@franciscancatholicschool.edu.ng",
		Password: "app-password",
	})
	assert.IsType(t, &SMTPMailer{}, mailer)
}

func TestSMTPMailerRequiresRecipient(t *testing.T) {
	mailer := NewSMTPMailer(config.SMTPConfig{Host: "localhost", Port: "25"})

	err := mailer.Send(&models.EmailDraft{Subject: "Receipt"})
	assert.Error(t, err)
}

func TestConsoleMailerAlwaysSucceeds(t *testing.T) {
	mailer := &ConsoleMailer{}
	err := mailer.Send(&models.EmailDraft{
		To:      "parent@example.com",
		Subject: "Receipt",
		Body:    "Amount Paid: ₦50,000",
	})
	assert.NoError(t, err)
}
