package email

import (
	"context"
	"fmt"

	"github.com/mailgun/mailgun-go/v4"
)

type mailgunTransport struct {
	domain  string
	apiKey  string
	apiBase string
}

func (t mailgunTransport) Deliver(ctx context.Context, message Message) (id string, err error) {
	mg := mailgun.NewMailgun(t.domain, t.apiKey)
	if t.apiBase != "" {
		mg.SetAPIBase(t.apiBase)
	}

	m := mg.NewMessage(message.Sender, message.Subject, message.Text, message.Recipients...)
	m.SetHtml(message.HTML)
	for _, address := range message.CC {
		m.AddCC(address)
	}
	for _, path := range message.Attachments {
		m.AddAttachment(path)
	}

	_, id, err = mg.Send(ctx, m)
	if err != nil {
		return "", fmt.Errorf("mailgun send: %w", err)
	}
	return id, nil
}
