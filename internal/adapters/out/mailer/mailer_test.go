package mailer

import (
	"bytes"
	"testing"

	"doctrack/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(Config{From: "doctrack@example.com"}, nil)
	require.ErrorContains(t, err, "host")

	_, err = New(Config{Host: "smtp.example.com"}, nil)
	require.ErrorContains(t, err, "sender")

	m, err := New(Config{Host: "smtp.example.com", Port: 2525, Username: "u", Password: "p", From: "doctrack@example.com"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestBuildMessage(t *testing.T) {
	t.Run("with attachment", func(t *testing.T) {
		msg, err := buildMessage("doctrack@example.com", ports.Message{
			To:      []string{"bookings@ta.example"},
			Subject: "Transport request TR-20250314-AB12",
			Body:    "Please collect on 16 Mar 2025.",
			Attachments: []ports.Attachment{
				{Filename: "TR-20250314-AB12.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.7")},
			},
		})
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		require.NoError(t, err)

		raw := buf.String()
		assert.Contains(t, raw, "Subject: Transport request TR-20250314-AB12")
		assert.Contains(t, raw, "bookings@ta.example")
		assert.Contains(t, raw, "doctrack@example.com")
		assert.Contains(t, raw, "TR-20250314-AB12.pdf")
		assert.Contains(t, raw, "application/pdf")
	})

	t.Run("no recipients", func(t *testing.T) {
		_, err := buildMessage("doctrack@example.com", ports.Message{Subject: "x"})
		require.Error(t, err)
	})

	t.Run("bad recipient", func(t *testing.T) {
		_, err := buildMessage("doctrack@example.com", ports.Message{To: []string{"not an address"}})
		require.Error(t, err)
	})
}
