// Package email delivers plain-text messages over SMTP.
package email

import (
	"fmt"

	"gopkg.in/mail.v2"
)

// dialer is the part of *mail.Dialer used by the client.
type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// Client sends one message per call over a fresh SMTP connection.
type Client struct {
	dialer dialer
	from   string
}

// NewClient creates a Client for the given SMTP server and sender address.
func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		dialer: mail.NewDialer(smtpHost, smtpPort, username, password),
		from:   from,
	}
}

// Send delivers a single message to one address. It does not retry.
func (c *Client) Send(to, subject, body string) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	if err := c.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	return nil
}
