package email

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

type TicketPDFData struct {
	BookingCode  string
	EventName    string
	EventDate    string
	CustomerName string
	Lines        []string
	Total        string
	QRCodePNG    []byte
}

// GenerateTicketPDF renders a one page A4 ticket with the booking QR code on top.
func GenerateTicketPDF(data TicketPDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if len(data.QRCodePNG) > 0 {
		imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
		imgName := "qr_" + data.BookingCode
		pdf.RegisterImageOptionsReader(imgName, imgOpts, bytes.NewReader(data.QRCodePNG))
		pdf.ImageOptions(imgName, (210.0-80.0)/2, pdf.GetY(), 80, 80, false, imgOpts, 0, "")
		pdf.Ln(84)
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.5)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetX(20)
	pdf.MultiCell(170, 9, tr(data.EventName), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetX(20)
	pdf.CellFormat(40, 8, "Date:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(130, 8, tr(data.EventDate), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetX(20)
	pdf.CellFormat(40, 8, "Guest:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(130, 8, tr(data.CustomerName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for _, line := range data.Lines {
		pdf.SetX(20)
		pdf.CellFormat(170, 7, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetX(20)
	pdf.CellFormat(170, 10, tr("Total: "+data.Total), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, fmt.Sprintf("Booking: %s", data.BookingCode), "", 1, "C", false, 0, "")
	pdf.MultiCell(0, 6, "Bring this ticket to the event. The QR code is scanned at the entrance.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
