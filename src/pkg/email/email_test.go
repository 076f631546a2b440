package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	delivered []Message
	err       error
}

func (f *fakeTransport) Deliver(ctx context.Context, message Message) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.delivered = append(f.delivered, message)
	return "id-1", nil
}

func sampleMessage(t *testing.T) Message {
	t.Helper()

	attachment := filepath.Join(t.TempDir(), "usuarios-remotos-2024-03-04.xlsx")
	require.NoError(t, os.WriteFile(attachment, []byte("PK\x03\x04 workbook bytes"), 0o644))

	return Message{
		Sender:      "reportes@example.com",
		Recipients:  []string{"jefe@example.com", "rrhh@example.com"},
		CC:          []string{"auditoria@example.com"},
		Subject:     "Reporte de Usuarios Remotos - 2024-03-04",
		Text:        "Estimados(as),",
		HTML:        "<p>Estimados(as),</p>",
		Attachments: []string{attachment},
	}
}

func TestClient_Send(t *testing.T) {
	transport := &fakeTransport{}
	client := &Client{Provider: ProviderSMTP, Transport: transport}
	message := sampleMessage(t)

	sent, e := client.Send(context.Background(), message)
	require.Nil(t, e)
	assert.True(t, sent)
	require.Len(t, transport.delivered, 1)
	assert.Equal(t, message.CC, transport.delivered[0].CC)
}

func TestClient_DryRunSkipsTransport(t *testing.T) {
	transport := &fakeTransport{}
	client := &Client{Provider: ProviderSendGrid, Transport: transport}
	message := sampleMessage(t)
	message.DryRun = true

	sent, e := client.Send(context.Background(), message)
	require.Nil(t, e)
	assert.True(t, sent)
	assert.Empty(t, transport.delivered)
}

func TestClient_TransportError(t *testing.T) {
	client := &Client{Provider: ProviderMailgun, Transport: &fakeTransport{err: errors.New("401 unauthorized")}}

	sent, e := client.Send(context.Background(), sampleMessage(t))
	assert.NotNil(t, e)
	assert.False(t, sent)
}

func TestClient_RejectsInvalidMessage(t *testing.T) {
	transport := &fakeTransport{}
	client := &Client{Provider: ProviderSES, Transport: transport}

	message := sampleMessage(t)
	message.Recipients = nil
	_, e := client.Send(context.Background(), message)
	assert.NotNil(t, e)

	message = sampleMessage(t)
	message.CC = []string{"not-an-address"}
	_, e = client.Send(context.Background(), message)
	assert.NotNil(t, e)

	assert.Empty(t, transport.delivered)
}

func TestNewClient(t *testing.T) {
	for _, provider := range []Provider{ProviderSendGrid, ProviderMailgun, ProviderSES, ProviderSMTP} {
		client, e := NewClient(provider)
		require.Nil(t, e, provider)
		assert.Equal(t, provider, client.Provider)
		assert.NotNil(t, client.Transport)
	}

	client, e := NewClient("pigeon")
	assert.NotNil(t, e)
	assert.Nil(t, client)
}

func TestSendMessage_DryRun(t *testing.T) {
	sendEmails := false
	e := SendMessage(ProviderSMTP, &sendEmails, "a@example.com", []string{"b@example.com"}, "s", "t", "<p>h</p>", &MessageOptions{CC: []string{"c@example.com"}})
	assert.Nil(t, e)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, xlsxContentType, ContentType("files/usuarios-remotos-2024-03-04.xlsx"))
	assert.Equal(t, "image/png", ContentType("chart.PNG"))
	assert.Equal(t, "application/octet-stream", ContentType("blob.unknownext"))
}

func TestBuildMIME(t *testing.T) {
	message := sampleMessage(t)

	raw, err := BuildMIME(message, time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	parsed, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "reportes@example.com", parsed.Header.Get("From"))
	assert.Equal(t, "jefe@example.com, rrhh@example.com", parsed.Header.Get("To"))
	assert.Equal(t, "auditoria@example.com", parsed.Header.Get("Cc"))

	subject, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, message.Subject, subject)

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mediaType)

	reader := multipart.NewReader(parsed.Body, params["boundary"])

	body, err := reader.NextPart()
	require.NoError(t, err)
	bodyType, _, err := mime.ParseMediaType(body.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", bodyType)

	attachment, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "usuarios-remotos-2024-03-04.xlsx", attachment.FileName())
	assert.True(t, strings.HasPrefix(attachment.Header.Get("Content-Type"), xlsxContentType))

	encoded, err := io.ReadAll(attachment)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(string(encoded), "\r\n", ""))
	require.NoError(t, err)
	assert.Equal(t, "PK\x03\x04 workbook bytes", string(decoded))

	_, err = reader.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestBuildMIME_MissingAttachment(t *testing.T) {
	message := sampleMessage(t)
	message.Attachments = []string{filepath.Join(t.TempDir(), "absent.xlsx")}

	_, err := BuildMIME(message, time.Now())
	assert.Error(t, err)
}

func TestBuildSendGridMail(t *testing.T) {
	message := sampleMessage(t)

	m, err := buildSendGridMail(message)
	require.NoError(t, err)

	assert.Equal(t, message.Subject, m.Subject)
	require.Len(t, m.Personalizations, 1)
	assert.Len(t, m.Personalizations[0].To, 2)
	assert.Len(t, m.Personalizations[0].CC, 1)
	require.Len(t, m.Attachments, 1)
	assert.Equal(t, "usuarios-remotos-2024-03-04.xlsx", m.Attachments[0].Filename)
	assert.Equal(t, xlsxContentType, m.Attachments[0].Type)
	require.Len(t, m.Content, 2)
	assert.Equal(t, "text/html", m.Content[1].Type)
}
