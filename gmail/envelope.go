package gmail

import (
	"encoding/base64"
	"mime"
	"strings"
)

// defaultSubject is used when an outgoing message has no subject.
const defaultSubject = "(no subject)"

// encodeRFC2047 encodes a header value for non-ASCII characters.
func encodeRFC2047(s string) string {
	for _, r := range s {
		if r > 127 {
			return mime.BEncoding.Encode("UTF-8", s)
		}
	}
	return s
}

// envelope renders the message as an RFC 2822 envelope. Multiple recipients
// are joined with a comma; the content type follows the IsHTML flag; replies
// carry In-Reply-To and References headers citing the original message.
func (m *OutgoingMessage) envelope() string {
	subject := m.Subject
	if subject == "" {
		subject = defaultSubject
	}

	var b strings.Builder

	b.WriteString("To: ")
	b.WriteString(strings.Join(m.To, ", "))
	b.WriteString("\r\n")

	if len(m.Cc) > 0 {
		b.WriteString("Cc: ")
		b.WriteString(strings.Join(m.Cc, ", "))
		b.WriteString("\r\n")
	}

	if len(m.Bcc) > 0 {
		b.WriteString("Bcc: ")
		b.WriteString(strings.Join(m.Bcc, ", "))
		b.WriteString("\r\n")
	}

	b.WriteString("Subject: ")
	b.WriteString(encodeRFC2047(subject))
	b.WriteString("\r\n")

	if m.InReplyTo != "" {
		b.WriteString("In-Reply-To: ")
		b.WriteString(m.InReplyTo)
		b.WriteString("\r\n")
		b.WriteString("References: ")
		b.WriteString(m.InReplyTo)
		b.WriteString("\r\n")
	}

	if m.IsHTML {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("\r\n")

	b.WriteString(m.Body)

	return b.String()
}

// encode returns the base64url-encoded envelope, the wire format the Gmail
// API requires for raw message bodies.
func (m *OutgoingMessage) encode() string {
	return base64.URLEncoding.EncodeToString([]byte(m.envelope()))
}
