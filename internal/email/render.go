package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"go-gin-event-booking/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type Message struct {
	To          string
	Subject     string
	Text        string
	HTML        string
	Attachments []Attachment
}

// Confirmation is everything the booking confirmation mail shows.
type Confirmation struct {
	BookingID    uuid.UUID
	To           string
	CustomerName string
	EventName    string
	EventDate    string
	TotalAmount  decimal.Decimal
	Tickets      []model.ConfirmationTicket
	Attendees    []model.ConfirmationAttendee
}

type confirmationView struct {
	Confirmation
	BookingCode string
	Total       string
	Lines       []string
	QRCode      htmltemplate.URL
}

var textTemplate = template.Must(template.New("confirmation.txt").Parse(`Hi{{if .CustomerName}} {{.CustomerName}}{{end}},

Your booking for {{.EventName}} on {{.EventDate}} is confirmed.

Booking: {{.BookingCode}}
{{range .Lines}}  {{.}}
{{end}}Total: {{.Total}}
{{if .Attendees}}
Attendees:
{{range .Attendees}}  {{.Name}} <{{.Email}}>
{{end}}{{end}}
Your ticket is attached. Show the QR code at the entrance.
`))

var htmlTemplate = htmltemplate.Must(htmltemplate.New("confirmation.html").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #222;">
  <h2>Your booking is confirmed</h2>
  <p>Hi{{if .CustomerName}} {{.CustomerName}}{{end}}, see you at <strong>{{.EventName}}</strong> on {{.EventDate}}.</p>
  <table cellpadding="4">
    {{range .Tickets}}<tr><td>{{.Name}}</td><td>x {{.Quantity}}</td></tr>{{end}}
    <tr><td><strong>Total</strong></td><td><strong>{{.Total}}</strong></td></tr>
  </table>
  {{if .Attendees}}<p>Attendees:</p>
  <ul>{{range .Attendees}}<li>{{.Name}} ({{.Email}})</li>{{end}}</ul>{{end}}
  <p><img src="{{.QRCode}}" alt="Booking {{.BookingCode}}" width="200" height="200"></p>
  <p style="color: #777;">Booking {{.BookingCode}}</p>
</body>
</html>
`))

// RenderConfirmation builds the text, HTML and PDF ticket of a confirmation mail.
func RenderConfirmation(c Confirmation) (*Message, error) {
	code := c.BookingID.String()

	png, err := QRCodePNG(code, qrCodeSize)
	if err != nil {
		return nil, err
	}

	view := confirmationView{
		Confirmation: c,
		BookingCode:  code,
		Total:        c.TotalAmount.StringFixed(2),
		QRCode:       htmltemplate.URL(QRCodeDataURI(png)),
	}
	for _, t := range c.Tickets {
		line := fmt.Sprintf("%d x %s", t.Quantity, t.Name)
		if !t.UnitPrice.IsZero() {
			line += " @ " + t.UnitPrice.StringFixed(2)
		}
		view.Lines = append(view.Lines, line)
	}

	var text bytes.Buffer
	if err := textTemplate.Execute(&text, view); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}
	var html bytes.Buffer
	if err := htmlTemplate.Execute(&html, view); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	pdf, err := GenerateTicketPDF(TicketPDFData{
		BookingCode:  code,
		EventName:    c.EventName,
		EventDate:    c.EventDate,
		CustomerName: c.CustomerName,
		Lines:        view.Lines,
		Total:        view.Total,
		QRCodePNG:    png,
	})
	if err != nil {
		return nil, err
	}

	return &Message{
		To:      c.To,
		Subject: fmt.Sprintf("Booking confirmed: %s", c.EventName),
		Text:    text.String(),
		HTML:    html.String(),
		Attachments: []Attachment{{
			Name:        fmt.Sprintf("ticket-%s.pdf", code),
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}, nil
}
