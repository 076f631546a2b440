package email

import (
	"context"
	"fmt"
	"time"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/config"
)

// Transport delivers a message through one provider and returns the provider's message id.
type Transport interface {
	Deliver(ctx context.Context, message Message) (id string, err error)
}

// Client sends messages through the transport chosen for its provider.
type Client struct {
	Provider  Provider
	Transport Transport
}

/*
NewClient picks the transport for provider, reading credentials from the environment.
*/
func NewClient(provider Provider) (client *Client, e *xerr.Error) {
	var transport Transport

	switch provider {
	case ProviderSendGrid:
		transport = sendGridTransport{apiKey: config.Env("SENDGRID_API_KEY", ""), host: Cfg.SendGridHost}
	case ProviderMailgun:
		transport = mailgunTransport{
			domain:  config.Env("MAILGUN_DOMAIN", ""),
			apiKey:  config.Env("MAILGUN_API_KEY", ""),
			apiBase: Cfg.MailgunAPIBase,
		}
	case ProviderSES:
		transport = sesTransport{region: config.Env("AWS_REGION", Cfg.SESRegion)}
	case ProviderSMTP:
		transport = smtpTransport{
			host:     Cfg.SMTPHost,
			port:     Cfg.SMTPPort,
			username: config.Env("SMTP_USERNAME", ""),
			password: config.Env("SMTP_PASSWORD", ""),
		}
	default:
		e = xerr.NewError(fmt.Errorf("unknown provider '%s'", provider), "Unable to create email client", provider)
		return nil, e
	}

	return &Client{Provider: provider, Transport: transport}, nil
}

/*
Send validates and delivers message.

A dry-run message is logged and reported as sent without contacting the provider.
*/
func (c *Client) Send(ctx context.Context, message Message) (sent bool, e *xerr.Error) {
	err := message.validate()
	if err != nil {
		e = xerr.NewError(err, "Email message is not valid", message.Subject)
		return false, e
	}

	if message.DryRun {
		tl.Log(
			tl.Warning, palette.Yellow, "Dry run: %s email '%s' to %s (cc %s), %v attachments",
			"not sending", message.Subject, message.Recipients, message.CC, len(message.Attachments),
		)
		tl.Log(tl.Verbose, palette.BlueDim, "Full Email:\n```\n%s\n```", message.HTML)
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(Cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	tl.Log(tl.Info, palette.Blue, "Sending '%s' via %s to %s", message.Subject, c.Provider, message.Recipients)
	id, err := c.Transport.Deliver(ctx, message)
	if err != nil {
		e = xerr.NewError(err, "Unable to send email", map[string]any{"provider": c.Provider, "subject": message.Subject})
		return false, e
	}

	tl.Log(tl.Info1, palette.Green, "Email %s via %s (id '%s')", "sent", c.Provider, id)
	return true, nil
}

/*
SendMessage sends one email through provider.

When *sendEmails is false the message is only logged.
*/
func SendMessage(
	provider Provider, sendEmails *bool, sender string, recipients []string,
	subject string, text string, html string, options *MessageOptions,
) (e *xerr.Error) {
	client, e := NewClient(provider)
	if e != nil {
		return e
	}

	message := Message{
		Sender:     sender,
		Recipients: recipients,
		Subject:    subject,
		Text:       text,
		HTML:       html,
		DryRun:     sendEmails == nil || !*sendEmails,
	}
	if options != nil {
		message.CC = options.CC
		message.Attachments = options.Attachments
	}

	_, e = client.Send(context.Background(), message)
	return e
}
