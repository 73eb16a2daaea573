package mailer

import (
	"fmt"
	"log"
	"time"

	"portfolio/internal/models"

	"github.com/wneessen/go-mail"
)

// Config holds SMTP connection details.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string // fixed recipient for contact messages
}

// Client wraps an SMTP client used to relay contact messages to the
// site owner. Every send dials, delivers and closes within a bounded
// timeout so a hung SMTP server cannot stall a request indefinitely.
type Client struct {
	client *mail.Client
	from   string
	to     string
}

// NewClient creates a new SMTP mailer client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" || cfg.To == "" {
		return nil, fmt.Errorf("sender and recipient addresses are required")
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	log.Printf("Mailer configured for %s:%d", cfg.Host, cfg.Port)

	return &Client{
		client: client,
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

// Send relays a contact message to the configured recipient.
func (c *Client) Send(message models.ContactMessage) error {
	msg := mail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return fmt.Errorf("invalid sender address %s: %w", c.from, err)
	}
	if err := msg.To(c.to); err != nil {
		return fmt.Errorf("invalid recipient address %s: %w", c.to, err)
	}
	msg.Subject("New User Information!")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Name: %s\nemail: %s\nSubject: %s\nMessage: %s",
		message.Name, message.Email, message.Subject, message.Message,
	))

	if err := c.client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
