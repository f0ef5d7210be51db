package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/and161185/clubhouse/internal/currency"
	"github.com/and161185/clubhouse/internal/model"
)

// Club is the organisation printed on every receipt.
type Club struct {
	Name    string `yaml:"name"`
	Motto   string `yaml:"motto"`
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Hashtag string `yaml:"hashtag"`
}

type view struct {
	Club    Club
	Receipt model.Receipt
	Date    string
	Amount  string
}

// Render produces a self-contained printable HTML document. It only reads the
// receipt record, so a persisted receipt always renders the same way.
func Render(r model.Receipt, club Club) ([]byte, error) {
	v := view{
		Club:    club,
		Receipt: r,
		Date:    r.Date.Format("January 2, 2006"),
		Amount:  currency.FormatMoney(r.Amount, currency.Base),
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, v); err != nil {
		return nil, fmt.Errorf("render receipt %s: %w", r.Number, err)
	}
	return buf.Bytes(), nil
}

var page = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Club.Name}} Receipt {{.Receipt.Number}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; background: #111827; color: #f9fafb; margin: 0; padding: 2rem; }
#receipt { max-width: 42rem; margin: 0 auto; background: #1f2937; border: 4px solid #eab308; border-radius: 12px; overflow: hidden; }
header { display: flex; justify-content: space-between; padding: 1.5rem; border-bottom: 2px solid #eab308; }
h1 { color: #eab308; margin: 0; letter-spacing: .2em; }
.muted { color: #9ca3af; font-size: .85rem; }
.parties { display: flex; justify-content: space-between; padding: 1.5rem; border-bottom: 1px solid #374151; }
.parties h3, .details h3 { color: #eab308; margin-top: 0; }
.details { padding: 1.5rem; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: .75rem; text-align: left; border-top: 1px solid #374151; }
td.amount, th.amount { text-align: right; color: #facc15; font-weight: bold; }
.totals { padding: 1.5rem; background: #111827; }
.row { display: flex; justify-content: space-between; font-weight: bold; }
.total { font-size: 1.8rem; color: #eab308; }
#print { display: block; max-width: 42rem; margin: 0 auto 1.5rem; width: 100%; padding: .75rem; background: #eab308; border: 0; border-radius: 8px; font-weight: bold; cursor: pointer; }
@media print {
  body { background: #fff; color: #000; padding: 0; }
  #receipt { border: none; max-width: none; }
  #print { display: none; }
}
</style>
</head>
<body>
<button id="print" onclick="window.print()">Print Receipt</button>
<div id="receipt">
  <header>
    <div>
      <h1>{{.Club.Name}}</h1>
      {{with .Club.Motto}}<p class="muted">{{.}}</p>{{end}}
    </div>
    <div style="text-align:right">
      <p><strong>PAYMENT RECEIPT</strong></p>
      <p>RECEIPT NO: {{.Receipt.Number}}</p>
      <p class="muted">Date: {{.Date}}</p>
    </div>
  </header>
  <section class="parties">
    <div>
      <h3>FROM (Payer)</h3>
      <p><strong>{{.Receipt.Payer.Name}}</strong></p>
      <p>{{.Receipt.Payer.Role}}</p>
      <p class="muted">Phone: {{.Receipt.Payer.Phone}}</p>
      <p class="muted">Email: {{.Receipt.Payer.Email}}</p>
    </div>
    <div style="text-align:right">
      <h3>RECEIVED BY</h3>
      <p><strong>{{.Receipt.Receiver.Name}}</strong></p>
      <p>{{.Receipt.Receiver.Role}}, {{.Club.Name}}</p>
      <p class="muted">Contact: {{.Receipt.Receiver.Phone}}</p>
      <p class="muted">Email: {{.Receipt.Receiver.Email}}</p>
    </div>
  </section>
  <section class="details">
    <h3>CONTRIBUTION DETAILS</h3>
    <table>
      <tr><th>Description</th><th class="amount">Amount</th></tr>
      <tr><td>{{.Receipt.Description}}</td><td class="amount">{{.Amount}}</td></tr>
    </table>
  </section>
  <section class="totals">
    <div class="row"><span>MODE OF PAYMENT</span><span>{{.Receipt.ModeOfPayment}}</span></div>
    <div class="row total"><span>TOTAL</span><span>{{.Amount}}</span></div>
    <p class="muted"><em>Thank you for supporting {{.Club.Name}}. Your contribution keeps training, matches and equipment going.</em></p>
    {{with .Club.Hashtag}}<p style="text-align:right;color:#facc15"><strong>{{.}}</strong></p>{{end}}
  </section>
</div>
</body>
</html>
`))
