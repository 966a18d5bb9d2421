// Package pdfdoc renders an assembled document as a downloadable PDF. It
// consumes the same section sequence as the HTML preview and applies the same
// shared formatting helpers, so the export can never disagree with the
// preview on content.
package pdfdoc

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/freelancer-docs/pkg/section"
)

// Column layout for the items table, in mm on an A4 page with default
// margins (190mm usable).
const (
	colDescription = 90
	colQuantity    = 20
	colUnitPrice   = 40
	colAmount      = 40
)

// Renderer implements section.Renderer for the PDF export.
type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

// Render walks the section sequence in order and paints it onto A4 pages.
func (r *Renderer) Render(doc section.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the translator maps the currency symbols the
	// encoding supports.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	inTable := false
	for _, s := range doc.Sections {
		_, isRow := s.(section.TableRow)
		if isRow && !inTable {
			writeTableHead(pdf, tr)
			inTable = true
		}
		if !isRow {
			inTable = false
		}

		switch s := s.(type) {
		case section.Header:
			writeHeader(pdf, tr, s)
		case section.PartyBlock:
			writeParty(pdf, tr, s)
		case section.TableRow:
			writeRow(pdf, tr, s)
		case section.TextBlock:
			writeText(pdf, tr, s)
		case section.TotalsSummary:
			writeTotals(pdf, tr, s)
		case section.SignaturePair:
			writeSignatures(pdf, tr, s)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, s section.Header) {
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(s.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	if s.Ref != "" {
		pdf.CellFormat(0, 6, tr(s.Ref), "", 1, "C", false, 0, "")
	}
	for _, d := range s.Dates {
		pdf.CellFormat(0, 6, tr(d.Label+": "+section.FormatDate(d.Date)), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
}

func writeParty(pdf *gofpdf.Fpdf, tr func(string) string, s section.PartyBlock) {
	if s.Label != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 6, tr(s.Label), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, tr(s.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if s.Address != "" {
		pdf.MultiCell(0, 5, tr(s.Address), "", "L", false)
	}
	for _, line := range s.Lines {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}
	if s.Note != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 5, tr(s.Note), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func writeTableHead(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(colDescription, 8, tr("Description"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colQuantity, 8, tr("Quantity"), "B", 0, "R", false, 0, "")
	pdf.CellFormat(colUnitPrice, 8, tr("Unit Price"), "B", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, 8, tr("Amount"), "B", 1, "R", false, 0, "")
}

func writeRow(pdf *gofpdf.Fpdf, tr func(string) string, s section.TableRow) {
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(colDescription, 8, tr(s.Description), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colQuantity, 8, strconv.Itoa(s.Quantity), "B", 0, "R", false, 0, "")
	pdf.CellFormat(colUnitPrice, 8, tr(section.FormatCurrency(s.UnitPrice, s.Currency)), "B", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, 8, tr(section.FormatCurrency(s.Amount, s.Currency)), "B", 1, "R", false, 0, "")
}

func writeTotals(pdf *gofpdf.Fpdf, tr func(string) string, s section.TotalsSummary) {
	pdf.Ln(2)
	totalsLine(pdf, tr, "Subtotal:", section.FormatCurrency(s.Subtotal, s.Currency), false)
	totalsLine(pdf, tr, "Tax ("+section.FormatPercent(s.TaxPercent)+"%):", section.FormatCurrency(s.TaxAmount, s.Currency), false)
	totalsLine(pdf, tr, "Total:", section.FormatCurrency(s.Total, s.Currency), true)
	pdf.Ln(3)
}

func totalsLine(pdf *gofpdf.Fpdf, tr func(string) string, label, value string, grand bool) {
	if grand {
		pdf.SetFont("Arial", "B", 12)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(150, 7, tr(label), "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, tr(value), "", 1, "R", false, 0, "")
}

func writeText(pdf *gofpdf.Fpdf, tr func(string) string, s section.TextBlock) {
	if s.Heading != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 7, tr(s.Heading), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 5, tr(s.Body), "", "L", false)
	pdf.Ln(3)
}

func writeSignatures(pdf *gofpdf.Fpdf, tr func(string) string, s section.SignaturePair) {
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(95, 6, tr(s.Left.Role), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr(s.Right.Role), "", 1, "L", false, 0, "")
	pdf.Ln(14)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(85, 6, tr(s.Left.Name), "T", 0, "L", false, 0, "")
	pdf.CellFormat(10, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(85, 6, tr(s.Right.Name), "T", 1, "L", false, 0, "")
	if s.Left.Representative != "" || s.Right.Representative != "" {
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(85, 5, tr(byLine(s.Left.Representative)), "", 0, "L", false, 0, "")
		pdf.CellFormat(10, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(85, 5, tr(byLine(s.Right.Representative)), "", 1, "L", false, 0, "")
	}
}

func byLine(representative string) string {
	if representative == "" {
		return ""
	}
	return "By: " + representative
}
