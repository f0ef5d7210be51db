package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/and161185/clubhouse/internal/currency"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/and161185/clubhouse/internal/receipt"
)

// Message is a rendered email ready for any transport.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	Text      string
	HTML      string
}

// ReceiptParams are the values substituted into the receipt email.
type ReceiptParams struct {
	PayerName     string
	PayerEmail    string
	ReceiptNumber string
	Amount        string
	Date          string
	Description   string
	PaymentMode   string
	ReceiverName  string
	ClubName      string
}

func NewReceiptParams(r model.Receipt, club receipt.Club) ReceiptParams {
	return ReceiptParams{
		PayerName:     r.Payer.Name,
		PayerEmail:    r.Payer.Email,
		ReceiptNumber: r.Number,
		Amount:        currency.FormatMoney(r.Amount, currency.Base),
		Date:          r.Date.Format("January 2, 2006"),
		Description:   r.Description,
		PaymentMode:   r.ModeOfPayment,
		ReceiverName:  r.Receiver.Name,
		ClubName:      club.Name,
	}
}

var receiptHTML = template.Must(template.New("receipt").Parse(`<html><body>
<h2>{{.ClubName}}: payment received</h2>
<p>Dear {{.PayerName}},</p>
<p>Thank you for your payment. Receipt <strong>{{.ReceiptNumber}}</strong> has been issued.</p>
<table>
<tr><td>Amount</td><td>{{.Amount}}</td></tr>
<tr><td>Date</td><td>{{.Date}}</td></tr>
<tr><td>For</td><td>{{.Description}}</td></tr>
<tr><td>Paid by</td><td>{{.PaymentMode}}</td></tr>
<tr><td>Received by</td><td>{{.ReceiverName}}</td></tr>
</table>
</body></html>`))

func ReceiptMessage(p ReceiptParams) (Message, error) {
	var html bytes.Buffer
	if err := receiptHTML.Execute(&html, p); err != nil {
		return Message{}, fmt.Errorf("render receipt email: %w", err)
	}

	text := fmt.Sprintf("Dear %s,\n\nThank you for your payment. Receipt %s has been issued.\n\n"+
		"Amount: %s\nDate: %s\nFor: %s\nPaid by: %s\nReceived by: %s\n\n%s\n",
		p.PayerName, p.ReceiptNumber, p.Amount, p.Date, p.Description, p.PaymentMode, p.ReceiverName, p.ClubName)

	return Message{
		ToName:    p.PayerName,
		ToAddress: p.PayerEmail,
		Subject:   fmt.Sprintf("%s receipt %s", p.ClubName, p.ReceiptNumber),
		Text:      text,
		HTML:      html.String(),
	}, nil
}

var resetHTML = template.Must(template.New("reset").Parse(`<html><body>
<p>A password reset was requested for your {{.Club}} account.</p>
<p><a href="{{.Link}}">Choose a new password</a>. The link expires in one hour.</p>
<p>If you did not ask for this, ignore this email.</p>
</body></html>`))

func PasswordResetMessage(email, link, clubName string) (Message, error) {
	var html bytes.Buffer
	if err := resetHTML.Execute(&html, struct{ Club, Link string }{clubName, link}); err != nil {
		return Message{}, fmt.Errorf("render reset email: %w", err)
	}

	return Message{
		ToAddress: email,
		Subject:   clubName + " password reset",
		Text: fmt.Sprintf("A password reset was requested for your %s account.\n\nOpen %s to choose a new password. The link expires in one hour.\n",
			clubName, link),
		HTML: html.String(),
	}, nil
}
