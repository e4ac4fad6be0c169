package mailer

import (
	"context"
	"fmt"

	"github.com/alimikegami/shopping-cart-service/config"
	"github.com/alimikegami/shopping-cart-service/pkg/utils"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type sendFunc func(message *gomail.Message, sender string, password string, smtpServer string, smtpPort int) error

type SMTPMailer struct {
	config config.SMTPConfig
	send   sendFunc
}

func CreateSMTPMailer(config config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config, send: utils.SendEmail}
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, email string, username string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.Sender)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Welcome to the shop")
	msg.SetBody("text/plain", fmt.Sprintf("Hi %s,\n\nyour account has been created. Happy shopping!", username))

	if err := m.send(msg, m.config.Sender, m.config.Password, m.config.Host, m.config.Port); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SendWelcome").Msg("")
		return err
	}

	return nil
}

// NoopMailer is used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) SendWelcome(ctx context.Context, email string, username string) error {
	return nil
}
