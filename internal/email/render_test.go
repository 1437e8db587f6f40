package email

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go-gin-event-booking/config"
	"go-gin-event-booking/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfirmation() Confirmation {
	return Confirmation{
		BookingID:    uuid.MustParse("6b1f3f6e-8c55-4d3e-9a84-3f1c2b9d7e10"),
		To:           "ada@example.com",
		CustomerName: "Ada Lovelace",
		EventName:    "Jazz in the Park",
		EventDate:    "2026-07-04",
		TotalAmount:  decimal.NewFromInt(200),
		Tickets: []model.ConfirmationTicket{
			{Name: "General", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
			{Name: "VIP", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
		},
		Attendees: []model.ConfirmationAttendee{
			{Name: "Ada Lovelace", Email: "ada@example.com"},
		},
	}
}

func TestRenderConfirmation(t *testing.T) {
	msg, err := RenderConfirmation(testConfirmation())

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "Booking confirmed: Jazz in the Park", msg.Subject)

	assert.Contains(t, msg.Text, "Jazz in the Park on 2026-07-04")
	assert.Contains(t, msg.Text, "2 x General @ 50.00")
	assert.Contains(t, msg.Text, "Total: 200.00")
	assert.Contains(t, msg.Text, "Ada Lovelace <ada@example.com>")

	assert.Contains(t, msg.HTML, `src="data:image/png;base64,`)
	assert.Contains(t, msg.HTML, "6b1f3f6e-8c55-4d3e-9a84-3f1c2b9d7e10")

	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "ticket-6b1f3f6e-8c55-4d3e-9a84-3f1c2b9d7e10.pdf", msg.Attachments[0].Name)
	assert.Equal(t, "application/pdf", msg.Attachments[0].ContentType)
	assert.True(t, bytes.HasPrefix(msg.Attachments[0].Data, []byte("%PDF")))
}

func TestRenderConfirmation_EscapesHTML(t *testing.T) {
	c := testConfirmation()
	c.EventName = "<script>alert(1)</script>"

	msg, err := RenderConfirmation(c)

	require.NoError(t, err)
	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
}

func TestQRCodePNG(t *testing.T) {
	png, err := QRCodePNG("booking", 128)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	assert.True(t, strings.HasPrefix(QRCodeDataURI(png), "data:image/png;base64,iVBOR"))
}

func TestNewSender(t *testing.T) {
	t.Run("Log sender without smtp host", func(t *testing.T) {
		s := NewSender(config.EmailConfig{})
		_, ok := s.(*LogSenderImpl)
		assert.True(t, ok)
		assert.NoError(t, s.Send(context.Background(), &Message{To: "a@example.com"}))
	})

	t.Run("SMTP sender builds a multipart mail", func(t *testing.T) {
		s := NewSender(config.EmailConfig{
			SMTPHost:    "localhost",
			SMTPPort:    "2525",
			FromAddress: "tickets@example.com",
			FromName:    "Tickets",
		})
		smtpSender, ok := s.(*SMTPSenderImpl)
		require.True(t, ok)

		msg, err := RenderConfirmation(testConfirmation())
		require.NoError(t, err)

		buf, err := smtpSender.build(msg).MimeBuf()
		require.NoError(t, err)
		raw := buf.String()
		assert.Contains(t, raw, "Subject: Booking confirmed: Jazz in the Park")
		assert.Contains(t, raw, "tickets@example.com")
		assert.Contains(t, raw, "application/pdf")
	})

	t.Run("Cancelled context", func(t *testing.T) {
		s := NewSender(config.EmailConfig{SMTPHost: "localhost", SMTPPort: "2525", FromAddress: "t@example.com"})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, s.Send(ctx, &Message{To: "a@example.com"}), context.Canceled)
	})
}
