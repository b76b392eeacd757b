package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// GofpdfRenderer draws invoices directly with gofpdf. It needs no
// external browser, which makes it the default renderer.
type GofpdfRenderer struct{}

// NewGofpdfRenderer creates a new GofpdfRenderer
func NewGofpdfRenderer() *GofpdfRenderer {
	return &GofpdfRenderer{}
}

const (
	pageMargin = 15.0
	lineHeight = 6.0

	colDescription = 95.0
	colQuantity    = 20.0
	colUnitPrice   = 32.0
	colAmount      = 33.0
)

// Render draws the invoice document onto an A4 page
func (r *GofpdfRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "document is nil", nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeRenderTimeout, "rendering cancelled", err)
	}

	p := gofpdf.New("P", "mm", "A4", "")
	p.SetMargins(pageMargin, pageMargin, pageMargin)
	p.SetAutoPageBreak(true, pageMargin)
	p.AddPage()

	r.drawHeader(p, doc)
	r.drawParties(p, doc)
	r.drawLines(p, doc)
	r.drawTotals(p, doc)
	if doc.Notes != "" {
		r.drawNotes(p, doc)
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, NewRenderError(ErrCodeRenderFailed, "failed to write PDF output", err)
	}
	return buf.Bytes(), nil
}

func (r *GofpdfRenderer) drawHeader(p *gofpdf.Fpdf, doc *Document) {
	p.SetFont("Helvetica", "B", 22)
	p.CellFormat(100, 10, "INVOICE", "", 0, "L", false, 0, "")

	p.SetFont("Helvetica", "", 10)
	p.CellFormat(0, 10, "Issued: "+formatDate(doc.IssueDate), "", 1, "R", false, 0, "")

	p.SetFont("Helvetica", "", 12)
	p.CellFormat(100, 6, doc.Number, "", 0, "L", false, 0, "")

	p.SetFont("Helvetica", "", 10)
	p.CellFormat(0, 6, "Due: "+formatDate(doc.DueDate), "", 1, "R", false, 0, "")

	p.SetFont("Helvetica", "B", 10)
	p.CellFormat(100, 6, "", "", 0, "L", false, 0, "")
	p.CellFormat(0, 6, strings.ToUpper(doc.Status), "", 1, "R", false, 0, "")
	p.Ln(8)
}

func (r *GofpdfRenderer) drawParties(p *gofpdf.Fpdf, doc *Document) {
	startY := p.GetY()
	half := (210 - 2*pageMargin) / 2

	r.drawParty(p, "FROM", doc.Company, pageMargin, startY, half)
	r.drawParty(p, "BILL TO", doc.Customer, pageMargin+half, startY, half)
	p.Ln(6)
}

func (r *GofpdfRenderer) drawParty(p *gofpdf.Fpdf, label string, party Party, x, y, width float64) {
	p.SetXY(x, y)
	p.SetFont("Helvetica", "B", 8)
	p.SetTextColor(110, 110, 110)
	p.CellFormat(width, 5, label, "", 2, "L", false, 0, "")

	p.SetTextColor(26, 26, 26)
	p.SetFont("Helvetica", "B", 10)
	p.CellFormat(width, 5, party.Name, "", 2, "L", false, 0, "")

	p.SetFont("Helvetica", "", 9)
	p.MultiCell(width, 4.5, party.Address, "", "L", false)
	p.SetX(x)
	p.CellFormat(width, 4.5, party.Phone, "", 2, "L", false, 0, "")
	p.CellFormat(width, 4.5, party.Email, "", 2, "L", false, 0, "")
}

func (r *GofpdfRenderer) drawLines(p *gofpdf.Fpdf, doc *Document) {
	p.SetY(p.GetY() + 6)

	p.SetFont("Helvetica", "B", 9)
	p.SetFillColor(240, 240, 240)
	p.CellFormat(colDescription, 7, "Description", "B", 0, "L", true, 0, "")
	p.CellFormat(colQuantity, 7, "Qty", "B", 0, "R", true, 0, "")
	p.CellFormat(colUnitPrice, 7, "Unit Price", "B", 0, "R", true, 0, "")
	p.CellFormat(colAmount, 7, "Amount", "B", 1, "R", true, 0, "")

	p.SetFont("Helvetica", "", 9)
	for _, line := range doc.Lines {
		p.CellFormat(colDescription, lineHeight, line.Description, "B", 0, "L", false, 0, "")
		p.CellFormat(colQuantity, lineHeight, fmt.Sprintf("%d", line.Quantity), "B", 0, "R", false, 0, "")
		p.CellFormat(colUnitPrice, lineHeight, formatMoney(line.UnitPrice), "B", 0, "R", false, 0, "")
		p.CellFormat(colAmount, lineHeight, formatMoney(line.LineTotal), "B", 1, "R", false, 0, "")
	}
}

func (r *GofpdfRenderer) drawTotals(p *gofpdf.Fpdf, doc *Document) {
	p.Ln(4)
	labelWidth := colDescription + colQuantity

	p.SetFont("Helvetica", "", 10)
	p.CellFormat(labelWidth, lineHeight, "", "", 0, "L", false, 0, "")
	p.CellFormat(colUnitPrice, lineHeight, "Subtotal", "", 0, "R", false, 0, "")
	p.CellFormat(colAmount, lineHeight, formatMoney(doc.Subtotal), "", 1, "R", false, 0, "")

	if !doc.Discount.IsZero() {
		p.CellFormat(labelWidth, lineHeight, "", "", 0, "L", false, 0, "")
		p.CellFormat(colUnitPrice, lineHeight, "Discount", "", 0, "R", false, 0, "")
		p.CellFormat(colAmount, lineHeight, "-"+formatMoney(doc.Discount), "", 1, "R", false, 0, "")
	}
	if !doc.Shipping.IsZero() {
		p.CellFormat(labelWidth, lineHeight, "", "", 0, "L", false, 0, "")
		p.CellFormat(colUnitPrice, lineHeight, "Shipping", "", 0, "R", false, 0, "")
		p.CellFormat(colAmount, lineHeight, formatMoney(doc.Shipping), "", 1, "R", false, 0, "")
	}

	p.SetFont("Helvetica", "B", 11)
	p.CellFormat(labelWidth, 8, "", "", 0, "L", false, 0, "")
	p.CellFormat(colUnitPrice, 8, "Total", "T", 0, "R", false, 0, "")
	p.CellFormat(colAmount, 8, formatMoney(doc.Total), "T", 1, "R", false, 0, "")
}

func (r *GofpdfRenderer) drawNotes(p *gofpdf.Fpdf, doc *Document) {
	p.Ln(8)
	p.SetFont("Helvetica", "B", 8)
	p.SetTextColor(110, 110, 110)
	p.CellFormat(0, 5, "NOTES", "", 1, "L", false, 0, "")

	p.SetTextColor(26, 26, 26)
	p.SetFont("Helvetica", "", 9)
	p.MultiCell(0, 4.5, doc.Notes, "", "L", false)
}

// Close is a no-op; gofpdf holds no external resources
func (r *GofpdfRenderer) Close() error {
	return nil
}

// Ensure GofpdfRenderer implements Renderer
var _ Renderer = (*GofpdfRenderer)(nil)
