package gmail

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeMultipleRecipients(t *testing.T) {
	msg := &OutgoingMessage{
		To:      []string{"a@example.com", "b@example.com"},
		Cc:      []string{"c@example.com", "d@example.com"},
		Subject: "Hello",
		Body:    "body",
	}

	env := msg.envelope()
	assert.Contains(t, env, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, env, "Cc: c@example.com, d@example.com\r\n")
	assert.NotContains(t, env, "Bcc:")
}

func TestEnvelopeDefaultSubject(t *testing.T) {
	msg := &OutgoingMessage{
		To:   []string{"a@example.com"},
		Body: "body",
	}

	assert.Contains(t, msg.envelope(), "Subject: (no subject)\r\n")
}

func TestEnvelopeContentType(t *testing.T) {
	plain := &OutgoingMessage{To: []string{"a@example.com"}, Body: "hi"}
	assert.Contains(t, plain.envelope(), "Content-Type: text/plain; charset=\"UTF-8\"\r\n")

	html := &OutgoingMessage{To: []string{"a@example.com"}, Body: "<p>hi</p>", IsHTML: true}
	assert.Contains(t, html.envelope(), "Content-Type: text/html; charset=\"UTF-8\"\r\n")
}

func TestEnvelopeReplyHeaders(t *testing.T) {
	msg := &OutgoingMessage{
		To:        []string{"a@example.com"},
		Body:      "body",
		InReplyTo: "<original@mail.example.com>",
	}

	env := msg.envelope()
	assert.Contains(t, env, "In-Reply-To: <original@mail.example.com>\r\n")
	assert.Contains(t, env, "References: <original@mail.example.com>\r\n")

	fresh := &OutgoingMessage{To: []string{"a@example.com"}, Body: "body"}
	assert.NotContains(t, fresh.envelope(), "In-Reply-To:")
	assert.NotContains(t, fresh.envelope(), "References:")
}

func TestEnvelopeHeaderBodySeparation(t *testing.T) {
	msg := &OutgoingMessage{
		To:      []string{"a@example.com"},
		Subject: "Hello",
		Body:    "line one\r\nline two",
	}

	env := msg.envelope()
	parts := strings.SplitN(env, "\r\n\r\n", 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "line one\r\nline two", parts[1])
	assert.Contains(t, parts[0], "MIME-Version: 1.0")
}

func TestEnvelopeNonASCIISubject(t *testing.T) {
	msg := &OutgoingMessage{
		To:      []string{"a@example.com"},
		Subject: "Grüße",
		Body:    "body",
	}

	env := msg.envelope()
	assert.Contains(t, env, "Subject: =?UTF-8?")
	assert.NotContains(t, env, "Subject: Grüße")
}

func TestEncodeIsBase64URL(t *testing.T) {
	msg := &OutgoingMessage{
		To:      []string{"a@example.com"},
		Subject: "Hello",
		Body:    "body",
	}

	decoded, err := base64.URLEncoding.DecodeString(msg.encode())
	require.NoError(t, err)
	assert.Equal(t, msg.envelope(), string(decoded))
}
