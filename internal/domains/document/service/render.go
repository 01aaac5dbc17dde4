package service

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	bookingModel "tourdesk/internal/domains/booking/model"
	tourModel "tourdesk/internal/domains/tour/model"
	"tourdesk/shared/constant"
	"unicode"

	"github.com/phpdave11/gofpdf"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	fontFamily = "Helvetica"
	dash       = "-"
)

var dStroke = strings.NewReplacer("đ", "d", "Đ", "D")

// plain folds text to ASCII since the core PDF fonts have no Vietnamese glyphs.
func plain(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, dStroke.Replace(value))
	if err != nil {
		return value
	}

	return strings.TrimSpace(folded)
}

func orDash(value string) string {
	if value = plain(value); value == constant.Empty {
		return dash
	}

	return value
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return dash
	}

	return t.Format(constant.DateOnlyFormat)
}

// formatMoney renders 1234567.5 as "1.234.568 VND".
func formatMoney(v float64) string {
	sign := constant.Empty
	if v < 0 {
		sign, v = dash, -v
	}

	digits := fmt.Sprintf("%.0f", v)

	var out []byte

	for i := range len(digits) {
		out = append(out, digits[i])

		if pos := len(digits) - i - 1; pos > 0 && pos%3 == 0 {
			out = append(out, '.')
		}
	}

	return sign + string(out) + " VND"
}

func safeFileName(value string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")

	value = replacer.Replace(plain(value))
	if value == constant.Empty {
		return "NA"
	}

	return value
}

type column struct {
	title string
	width float64
	align string
}

func header(pdf *gofpdf.Fpdf, title string, lines ...string) {
	pdf.SetFont(fontFamily, "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont(fontFamily, "", 10)

	for _, line := range lines {
		pdf.CellFormat(0, 6, plain(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
}

func table(pdf *gofpdf.Fpdf, columns []column, rows [][]string) {
	pdf.SetFont(fontFamily, "B", 9)
	pdf.SetFillColor(230, 230, 230)

	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}

	pdf.Ln(-1)
	pdf.SetFont(fontFamily, "", 9)

	for _, row := range rows {
		for i, c := range columns {
			pdf.CellFormat(c.width, 6, row[i], "1", 0, c.align, false, 0, "")
		}

		pdf.Ln(-1)
	}
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func renderManifest(instance tourModel.TourInstance, passengers []bookingModel.Passenger, printedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Passenger manifest "+instance.Code, false)
	pdf.AddPage()

	title := constant.Empty
	if instance.TemplateTitle != nil {
		title = *instance.TemplateTitle
	}

	header(pdf, "PASSENGER MANIFEST",
		"Tour: "+orDash(title),
		"Instance: "+instance.Code,
		fmt.Sprintf("Departure: %s   Return: %s", formatDate(&instance.DepartureDate), formatDate(&instance.ReturnDate)),
		fmt.Sprintf("Passengers: %d", len(passengers)),
		"Printed at: "+printedAt.Format(time.DateTime),
	)

	columns := []column{
		{"No", 10, "C"},
		{"Booking", 38, "L"},
		{"Full name", 62, "L"},
		{"Type", 18, "C"},
		{"Birth", 24, "C"},
		{"ID number", 40, "L"},
		{"Phone", 32, "L"},
		{"Note", 53, "L"},
	}

	rows := make([][]string, len(passengers))

	for i, p := range passengers {
		code := constant.Empty
		if p.BookingCode != nil {
			code = *p.BookingCode
		}

		rows[i] = []string{
			fmt.Sprint(i + 1),
			orDash(code),
			orDash(p.Fullname),
			p.Type.String(),
			formatDate(p.Birth),
			orDash(p.IDNumber),
			orDash(p.Phone),
			orDash(p.Note),
		}
	}

	table(pdf, columns, rows)

	return output(pdf)
}

func renderInvoice(booking bookingModel.Booking, instance tourModel.TourInstance, payments []bookingModel.Payment, printedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+booking.Code, false)
	pdf.AddPage()

	title := constant.Empty
	if booking.TourTitle != nil {
		title = *booking.TourTitle
	}

	header(pdf, "INVOICE",
		"Invoice no: INV-"+booking.Code,
		"Date: "+printedAt.Format(time.DateTime),
		"Billed to: "+orDash(booking.ClientName),
		"Phone: "+orDash(booking.ClientPhone),
		"Email: "+orDash(booking.ClientEmail),
		"Address: "+orDash(booking.ClientAddress),
		"Tour: "+orDash(title)+" ("+instance.Code+")",
		fmt.Sprintf("Departure: %s   Return: %s", formatDate(&instance.DepartureDate), formatDate(&instance.ReturnDate)),
	)

	lines := [][]string{}

	adult, child := instance.EffectivePriceAdult(), instance.EffectivePriceChildren()
	if child == nil {
		child = adult
	}

	if adult != nil {
		lines = append(lines, []string{"Adult", fmt.Sprint(booking.CountAdult), formatMoney(*adult), formatMoney(float64(booking.CountAdult) * *adult)})

		if booking.CountChildren > 0 {
			lines = append(lines, []string{"Child", fmt.Sprint(booking.CountChildren), formatMoney(*child), formatMoney(float64(booking.CountChildren) * *child)})
		}
	}

	quoted, ok := instance.Quote(booking.CountAdult, booking.CountChildren)
	if !ok || quoted != booking.FinalPrice {
		lines = append(lines, []string{"Agreed price", fmt.Sprint(booking.Seats()), dash, formatMoney(booking.FinalPrice)})
	}

	table(pdf, []column{
		{"Item", 80, "L"},
		{"Qty", 20, "C"},
		{"Unit price", 45, "R"},
		{"Amount", 45, "R"},
	}, lines)

	pdf.Ln(4)
	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(145, 7, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, formatMoney(booking.FinalPrice), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	paid := bookingModel.PaidTotal(payments, constant.Empty)

	if len(payments) > 0 {
		rows := make([][]string, len(payments))
		for i, p := range payments {
			rows[i] = []string{p.Date.Format(constant.DateOnlyFormat), p.Method.String(), p.Status.String(), formatMoney(p.Amount)}
		}

		table(pdf, []column{
			{"Paid on", 40, "C"},
			{"Method", 55, "L"},
			{"Status", 50, "L"},
			{"Amount", 45, "R"},
		}, rows)

		pdf.Ln(4)
	}

	pdf.SetFont(fontFamily, "B", 11)
	pdf.CellFormat(145, 7, "Paid", "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, formatMoney(paid), "", 1, "R", false, 0, "")
	pdf.CellFormat(145, 7, "Balance due", "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 7, formatMoney(booking.LeftPayment), "", 1, "R", false, 0, "")

	return output(pdf)
}
