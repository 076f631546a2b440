package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridTransport struct {
	apiKey string
	host   string
}

// buildSendGridMail converts message into a SendGrid v3 mail body.
func buildSendGridMail(message Message) (*mail.SGMailV3, error) {
	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("", message.Sender))
	m.Subject = message.Subject

	personalization := mail.NewPersonalization()
	for _, address := range message.Recipients {
		personalization.AddTos(mail.NewEmail("", address))
	}
	for _, address := range message.CC {
		personalization.AddCCs(mail.NewEmail("", address))
	}
	m.AddPersonalizations(personalization)

	m.AddContent(mail.NewContent("text/plain", message.Text), mail.NewContent("text/html", message.HTML))

	for _, path := range message.Attachments {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("attachment '%s': %w", path, err)
		}

		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(content))
		attachment.SetType(ContentType(path))
		attachment.SetFilename(filepath.Base(path))
		attachment.SetDisposition("attachment")
		m.AddAttachment(attachment)
	}

	return m, nil
}

func (t sendGridTransport) Deliver(ctx context.Context, message Message) (id string, err error) {
	m, err := buildSendGridMail(message)
	if err != nil {
		return "", err
	}

	request := sendgrid.GetRequest(t.apiKey, "/v3/mail/send", t.host)
	request.Method = rest.Post
	request.Body = mail.GetRequestBody(m)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return "", fmt.Errorf("sendgrid request: %w", err)
	}
	if response.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid returned %d: %s", response.StatusCode, response.Body)
	}

	return firstHeader(response.Headers, "X-Message-Id"), nil
}

func firstHeader(headers map[string][]string, key string) string {
	if values := headers[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}
