package email

import (
	"fmt"
	"strings"
)

type Provider string

const (
	ProviderSendGrid Provider = "sendgrid"
	ProviderMailgun  Provider = "mailgun"
	ProviderSES      Provider = "ses"
	ProviderSMTP     Provider = "smtp"
)

// Message is everything a provider needs to deliver one email. Attachments are file paths.
type Message struct {
	Sender      string   `json:"sender"`
	Recipients  []string `json:"recipients"`
	CC          []string `json:"cc,omitempty"`
	Subject     string   `json:"subject"`
	Text        string   `json:"-"`
	HTML        string   `json:"-"`
	Attachments []string `json:"attachments,omitempty"`
	DryRun      bool     `json:"dry_run"`
}

// MessageOptions are the optional parts of SendMessage.
type MessageOptions struct {
	CC          []string
	Attachments []string
}

func (m Message) validate() error {
	if strings.TrimSpace(m.Sender) == "" {
		return fmt.Errorf("sender is empty")
	}
	if len(m.Recipients) == 0 {
		return fmt.Errorf("no recipients")
	}
	for _, address := range append(append([]string(nil), m.Recipients...), m.CC...) {
		if strings.TrimSpace(address) == "" || !strings.Contains(address, "@") {
			return fmt.Errorf("invalid address '%s'", address)
		}
	}
	return nil
}
