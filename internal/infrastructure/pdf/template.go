package pdf

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// invoiceTemplate is the built-in invoice layout rendered to HTML
// before printing. Styling is self-contained so the page renders the
// same without network access.
const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Invoice {{.Number}}</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #1a1a1a; margin: 0; }
  .header { display: flex; justify-content: space-between; margin-bottom: 24px; }
  .title { font-size: 26px; font-weight: bold; letter-spacing: 1px; }
  .meta { text-align: right; }
  .meta div { margin-bottom: 2px; }
  .status { text-transform: uppercase; font-weight: bold; }
  .parties { display: flex; justify-content: space-between; margin-bottom: 24px; }
  .party { width: 45%; }
  .party h4 { margin: 0 0 6px; font-size: 11px; text-transform: uppercase; color: #666; }
  table.lines { width: 100%; border-collapse: collapse; margin-bottom: 16px; }
  table.lines th { text-align: left; border-bottom: 2px solid #1a1a1a; padding: 6px 4px; font-size: 11px; text-transform: uppercase; }
  table.lines td { border-bottom: 1px solid #ddd; padding: 6px 4px; }
  .num { text-align: right; }
  table.totals { margin-left: auto; border-collapse: collapse; }
  table.totals td { padding: 4px 8px; }
  table.totals .grand td { border-top: 2px solid #1a1a1a; font-weight: bold; font-size: 14px; }
  .notes { margin-top: 24px; color: #444; white-space: pre-wrap; }
  .notes h4 { margin: 0 0 4px; font-size: 11px; text-transform: uppercase; color: #666; }
</style>
</head>
<body>
<div class="header">
  <div>
    <div class="title">INVOICE</div>
    <div>{{.Number}}</div>
  </div>
  <div class="meta">
    <div>Issued: {{formatDate .IssueDate}}</div>
    <div>Due: {{formatDate .DueDate}}</div>
    <div class="status">{{.Status}}</div>
  </div>
</div>
<div class="parties">
  <div class="party">
    <h4>From</h4>
    <div><strong>{{.Company.Name}}</strong></div>
    <div>{{.Company.Address}}</div>
    <div>{{.Company.Phone}}</div>
    <div>{{.Company.Email}}</div>
  </div>
  <div class="party">
    <h4>Bill To</h4>
    <div><strong>{{.Customer.Name}}</strong></div>
    <div>{{.Customer.Address}}</div>
    <div>{{.Customer.Phone}}</div>
    <div>{{.Customer.Email}}</div>
  </div>
</div>
<table class="lines">
  <thead>
    <tr>
      <th>Description</th>
      <th class="num">Qty</th>
      <th class="num">Unit Price</th>
      <th class="num">Amount</th>
    </tr>
  </thead>
  <tbody>
    {{range .Lines}}
    <tr>
      <td>{{.Description}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{formatMoney .UnitPrice}}</td>
      <td class="num">{{formatMoney .LineTotal}}</td>
    </tr>
    {{end}}
  </tbody>
</table>
<table class="totals">
  <tr><td>Subtotal</td><td class="num">{{formatMoney .Subtotal}}</td></tr>
  {{if not .Discount.IsZero}}<tr><td>Discount</td><td class="num">-{{formatMoney .Discount}}</td></tr>{{end}}
  {{if not .Shipping.IsZero}}<tr><td>Shipping</td><td class="num">{{formatMoney .Shipping}}</td></tr>{{end}}
  <tr class="grand"><td>Total</td><td class="num">{{formatMoney .Total}}</td></tr>
</table>
{{if .Notes}}
<div class="notes">
  <h4>Notes</h4>
  <div>{{.Notes}}</div>
</div>
{{end}}
</body>
</html>`

var invoiceTmpl = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"formatMoney": formatMoney,
	"formatDate":  formatDate,
}).Parse(invoiceTemplate))

// renderHTML renders the document through the built-in invoice layout
func renderHTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, doc); err != nil {
		return "", NewRenderError(ErrCodeInvalidHTML, "failed to execute invoice template", err)
	}
	return buf.String(), nil
}

// formatMoney formats a decimal as a fixed two-place amount with
// thousand separators, e.g. 1234.5 -> "1,234.50"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	parts := strings.SplitN(d.StringFixed(2), ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(c)
	}

	return sign + b.String() + "." + parts[1]
}

// formatDate formats a date the way invoices display it
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
