package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

type smtpTransport struct {
	host     string
	port     int
	username string
	password string
}

func (t smtpTransport) Deliver(ctx context.Context, message Message) (id string, err error) {
	raw, err := BuildMIME(message, time.Now())
	if err != nil {
		return "", fmt.Errorf("build mime: %w", err)
	}

	var auth smtp.Auth
	if t.username != "" {
		auth = smtp.PlainAuth("", t.username, t.password, t.host)
	}

	envelope := append(append([]string(nil), message.Recipients...), message.CC...)
	addr := net.JoinHostPort(t.host, strconv.Itoa(t.port))

	// net/smtp has no context support; give up waiting once ctx is done
	result := make(chan error, 1)
	go func() {
		result <- smtp.SendMail(addr, auth, message.Sender, envelope, raw)
	}()

	select {
	case err = <-result:
	case <-ctx.Done():
		err = ctx.Err()
	}
	if err != nil {
		return "", fmt.Errorf("smtp send via %s: %w", addr, err)
	}
	return "", nil
}
