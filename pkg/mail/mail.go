package mail

import (
	"fmt"
	"gopkg.in/gomail.v2"
	"schedify/pkg/config"
)

var instance Sender

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(message *Message) error
	Close() error
}

func Get() Sender {
	if instance == nil {
		panic("mail is not initialized")
	}

	return instance
}

func Initialize(cfg *config.Config) (Sender, error) {
	if instance != nil {
		return instance, nil
	}

	if cfg.SMTP.Host == "" || cfg.SMTP.FromAddress == "" {
		return nil, fmt.Errorf("smtp host and from_address are required")
	}

	instance = &smtpSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
	}

	return instance, nil
}

type smtpSender struct {
	cfg    *config.Config
	dialer *gomail.Dialer
}

func (s *smtpSender) Send(message *Message) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.SMTP.FromAddress, s.cfg.SMTP.FromName)
	m.SetHeader("To", message.To)
	m.SetHeader("Subject", message.Subject)
	m.SetBody("text/html", message.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending message, %s", err)
	}

	return nil
}

func (s *smtpSender) Close() error {
	return nil
}
