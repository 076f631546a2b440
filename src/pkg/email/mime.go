package email

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ContentType guesses the MIME type of an attachment from its file name.
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return xlsxContentType
	}
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}
	return "application/octet-stream"
}

/*
BuildMIME renders message as a raw email: a multipart/mixed body holding a
multipart/alternative (text, html) part followed by one part per attachment.
*/
func BuildMIME(message Message, date time.Time) ([]byte, error) {
	var alternativeBody bytes.Buffer
	alternative := multipart.NewWriter(&alternativeBody)

	err := writeQuotedPart(alternative, "text/plain; charset=utf-8", message.Text)
	if err != nil {
		return nil, fmt.Errorf("text part: %w", err)
	}
	err = writeQuotedPart(alternative, "text/html; charset=utf-8", message.HTML)
	if err != nil {
		return nil, fmt.Errorf("html part: %w", err)
	}
	err = alternative.Close()
	if err != nil {
		return nil, err
	}

	var mixedBody bytes.Buffer
	mixed := multipart.NewWriter(&mixedBody)

	part, err := mixed.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"multipart/alternative; boundary=" + alternative.Boundary()},
	})
	if err != nil {
		return nil, err
	}
	_, err = part.Write(alternativeBody.Bytes())
	if err != nil {
		return nil, err
	}

	for _, path := range message.Attachments {
		err = writeAttachment(mixed, path)
		if err != nil {
			return nil, fmt.Errorf("attachment '%s': %w", path, err)
		}
	}
	err = mixed.Close()
	if err != nil {
		return nil, err
	}

	headers := []string{
		"From: " + message.Sender,
		"To: " + strings.Join(message.Recipients, ", "),
	}
	if len(message.CC) > 0 {
		headers = append(headers, "Cc: "+strings.Join(message.CC, ", "))
	}
	headers = append(headers,
		"Subject: "+mime.QEncoding.Encode("utf-8", message.Subject),
		"Date: "+date.Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		"Content-Type: multipart/mixed; boundary="+mixed.Boundary(),
	)

	var raw bytes.Buffer
	raw.WriteString(strings.Join(headers, "\r\n"))
	raw.WriteString("\r\n\r\n")
	raw.Write(mixedBody.Bytes())
	return raw.Bytes(), nil
}

func writeQuotedPart(writer *multipart.Writer, contentType string, content string) error {
	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	if err != nil {
		return err
	}

	encoder := quotedprintable.NewWriter(part)
	_, err = encoder.Write([]byte(content))
	if err != nil {
		return err
	}
	return encoder.Close()
}

func writeAttachment(writer *multipart.Writer, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {mime.FormatMediaType(ContentType(path), map[string]string{"name": name})},
		"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": name})},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return err
	}

	encoded := base64.StdEncoding.EncodeToString(content)
	for len(encoded) > 76 {
		_, err = part.Write([]byte(encoded[:76] + "\r\n"))
		if err != nil {
			return err
		}
		encoded = encoded[76:]
	}
	_, err = part.Write([]byte(encoded + "\r\n"))
	return err
}
