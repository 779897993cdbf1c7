package email

import (
	"strings"

	"gopkg.in/mail.v2"
)

const defaultSubject = "KeepSafe reminder"

type Client struct {
	dialer  *mail.Dialer
	from    string
	subject string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		dialer:  mail.NewDialer(smtpHost, smtpPort, username, password),
		from:    from,
		subject: defaultSubject,
	}
}

// Send mails msg as plain text. The first line of msg, if any, becomes the subject.
func (c *Client) Send(to string, msg string) error {
	return c.dialer.DialAndSend(c.message(to, msg))
}

func (c *Client) message(to, msg string) *mail.Message {
	subject, body := c.subject, msg
	if first, rest, ok := strings.Cut(msg, "\n"); ok {
		subject, body = first, rest
	}

	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	return message
}
