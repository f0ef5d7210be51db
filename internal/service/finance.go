package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/currency"
	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/metrics"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/and161185/clubhouse/internal/receipt"
	"github.com/and161185/clubhouse/internal/utils"
	"go.uber.org/zap"
)

const JerseyConfirmationPhrase = "Jersey Order Confirmation"

// Placeholders for receipts produced by order confirmation. The order flow does
// not collect the payer's identity, so these receipts cannot be emailed.
const (
	placeholderPayer    = "Member"
	placeholderContact  = "N/A"
	placeholderReceiver = "Admin"
	defaultPaymentMode  = "Cash"
	defaultPayerRole    = "Supporter"
	issuerRole          = "Administrator"
	defaultJerseySize   = "M"
)

type Finance struct {
	store    Storage
	policy   *access.Policy
	notifier Notifier
	sender   Sender
	club     receipt.Club
	logger   *zap.SugaredLogger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewFinance(store Storage, policy *access.Policy, notifier Notifier, sender Sender, club receipt.Club, logger *zap.SugaredLogger, m *metrics.Metrics) *Finance {
	return &Finance{
		store:    store,
		policy:   policy,
		notifier: notifier,
		sender:   sender,
		club:     club,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

func (f *Finance) requireFinance(s *access.Session) error {
	if !f.policy.HasRole(s, access.FinanceManagers...) {
		return fmt.Errorf("%w: finance management privilege required", errs.ErrForbidden)
	}
	return nil
}

func requireSession(s *access.Session) error {
	if s == nil {
		return fmt.Errorf("%w: authentication required", errs.ErrForbidden)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errs.ErrValidation}, args...)...)
}

func (f *Finance) AddTransaction(ctx context.Context, s *access.Session, req model.TransactionRequest) (model.Transaction, error) {
	if err := f.requireFinance(s); err != nil {
		return model.Transaction{}, err
	}

	if req.Amount <= 0 {
		return model.Transaction{}, invalid("amount must be greater than 0")
	}
	if !model.IsValidCategory(req.Category) {
		return model.Transaction{}, invalid("unknown category %q", req.Category)
	}
	if utils.IsBlank(req.Description) {
		return model.Transaction{}, invalid("description is required")
	}
	dir := model.Direction(req.Type)
	if dir != model.Inflow && dir != model.Outflow {
		return model.Transaction{}, invalid("type must be INFLOW or OUTFLOW")
	}
	date, err := parseDate(req.Date, f.now())
	if err != nil {
		return model.Transaction{}, err
	}

	t := model.Transaction{
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		Type:        dir,
		CreatedBy:   s.Identity.DisplayName,
	}

	saved, err := f.store.AddTransaction(ctx, t)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	return saved, nil
}

func parseDate(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return now.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, invalid("date %q must be YYYY-MM-DD or RFC 3339", value)
}

func (f *Finance) ListTransactions(ctx context.Context, s *access.Session) (model.Result[[]model.Transaction], error) {
	if err := requireSession(s); err != nil {
		return model.Result[[]model.Transaction]{}, err
	}

	list, err := f.store.ListTransactions(ctx)
	if err != nil {
		return degrade(f.logger, f.metrics, "transactions", []model.Transaction{}, err), nil
	}
	return model.OK(list), nil
}

// Summary totals the ledger in the base currency and formats it for display.
func (f *Finance) Summary(ctx context.Context, s *access.Session, display currency.Currency) (model.Result[model.FinanceSummary], error) {
	txs, err := f.ListTransactions(ctx, s)
	if err != nil {
		return model.Result[model.FinanceSummary]{}, err
	}

	sum := model.FinanceSummary{Currency: string(display), Season: model.PlaceholderSeason().SeasonName}
	for _, t := range txs.Data {
		switch t.Type {
		case model.Inflow:
			sum.Inflow += t.Amount
		case model.Outflow:
			sum.Outflow += t.Amount
		}
	}
	sum.Net = sum.Inflow - sum.Outflow
	sum.InflowDisplay = currency.FormatMoney(sum.Inflow, display)
	sum.OutflowDisplay = currency.FormatMoney(sum.Outflow, display)
	sum.NetDisplay = currency.FormatMoney(sum.Net, display)

	if season, found, err := f.store.GetSeasonStats(ctx); err == nil && found {
		sum.Season = season.SeasonName
	}

	if txs.Degraded {
		return model.Degrade(sum, txs.Reason), nil
	}
	return model.OK(sum), nil
}

// CreateOrder records a jersey order. Orders placed by finance managers skip the
// review queue and are confirmed immediately, without billing.
func (f *Finance) CreateOrder(ctx context.Context, s *access.Session, req model.JerseyOrderRequest) (model.JerseyOrder, error) {
	if err := requireSession(s); err != nil {
		return model.JerseyOrder{}, err
	}

	switch {
	case utils.IsBlank(req.NameOnJersey):
		return model.JerseyOrder{}, invalid("name on jersey is required")
	case utils.IsBlank(req.ContactInfo):
		return model.JerseyOrder{}, invalid("contact info is required")
	case utils.IsBlank(req.DeliveryLocation):
		return model.JerseyOrder{}, invalid("delivery location is required")
	}

	status := model.Pending
	if f.policy.HasRole(s, access.FinanceManagers...) {
		status = model.Confirmed
	}

	order := model.JerseyOrder{
		Size:             utils.OrDefault(req.Size, defaultJerseySize),
		NameOnJersey:     strings.TrimSpace(req.NameOnJersey),
		Number:           strings.TrimSpace(req.Number),
		DeliveryLocation: strings.TrimSpace(req.DeliveryLocation),
		ContactInfo:      strings.TrimSpace(req.ContactInfo),
		Status:           status,
		OrderedBy:        s.Identity.ID,
		OrderDate:        f.now().UTC(),
	}

	saved, err := f.store.AddJerseyOrder(ctx, order)
	if err != nil {
		return model.JerseyOrder{}, fmt.Errorf("add jersey order: %w", err)
	}

	f.metrics.OrdersCreated.WithLabelValues(string(saved.Status)).Inc()
	return saved, nil
}

// ConfirmOrder moves a PENDING order to CONFIRMED, bills it and issues a JERSEY
// receipt for the collected amount (charged minus balance).
func (f *Finance) ConfirmOrder(ctx context.Context, s *access.Session, orderID string, charged, balance int64) (model.JerseyOrder, error) {
	if err := f.requireFinance(s); err != nil {
		return model.JerseyOrder{}, err
	}

	switch {
	case charged < 0:
		return model.JerseyOrder{}, invalid("amount charged must not be negative")
	case balance < 0:
		return model.JerseyOrder{}, invalid("balance due must not be negative")
	case balance > charged:
		return model.JerseyOrder{}, invalid("balance due %d exceeds amount charged %d", balance, charged)
	}

	order, err := f.store.GetJerseyOrder(ctx, orderID)
	if err != nil {
		return model.JerseyOrder{}, fmt.Errorf("get jersey order %s: %w", orderID, err)
	}
	if order.Status != model.Pending {
		return model.JerseyOrder{}, fmt.Errorf("%w: order %s is %s", errs.ErrInvalidState, orderID, order.Status)
	}

	now := f.now().UTC()
	r := model.Receipt{
		Number:      receipt.NewNumber(model.JerseyReceipt, now),
		Date:        now,
		Amount:      charged - balance,
		Description: JerseyConfirmationPhrase,
		Payer: model.Party{
			Name:  placeholderPayer,
			Email: placeholderContact,
			Phone: placeholderContact,
			Role:  placeholderPayer,
		},
		Receiver: model.Party{
			Name:  placeholderReceiver,
			Email: placeholderContact,
			Phone: placeholderContact,
			Role:  placeholderReceiver,
		},
		ModeOfPayment: defaultPaymentMode,
		Type:          model.JerseyReceipt,
		GeneratedBy:   s.Identity.DisplayName,
	}

	updated, saved, err := f.store.ConfirmJerseyOrder(ctx, orderID, charged, balance, r)
	if err != nil {
		return model.JerseyOrder{}, fmt.Errorf("confirm jersey order %s: %w", orderID, err)
	}

	f.metrics.OrdersConfirmed.Inc()
	f.metrics.ReceiptsIssued.WithLabelValues(string(saved.Type)).Inc()
	f.notifier.NotifyReceipt(saved)

	return updated, nil
}

// ListOrders shows finance managers every order and everyone else their own.
func (f *Finance) ListOrders(ctx context.Context, s *access.Session) (model.Result[[]model.JerseyOrder], error) {
	if err := requireSession(s); err != nil {
		return model.Result[[]model.JerseyOrder]{}, err
	}

	orderedBy := s.Identity.ID
	if f.policy.HasRole(s, access.FinanceManagers...) {
		orderedBy = ""
	}

	list, err := f.store.ListJerseyOrders(ctx, orderedBy)
	if err != nil {
		return degrade(f.logger, f.metrics, "jersey_orders", []model.JerseyOrder{}, err), nil
	}
	return model.OK(list), nil
}

func (f *Finance) IssueManualReceipt(ctx context.Context, s *access.Session, req model.ManualReceiptRequest) (model.Receipt, error) {
	if err := f.requireFinance(s); err != nil {
		return model.Receipt{}, err
	}

	switch {
	case req.Amount <= 0:
		return model.Receipt{}, invalid("amount must be greater than 0")
	case utils.IsBlank(req.Description):
		return model.Receipt{}, invalid("description is required")
	case utils.IsBlank(req.PayerEmail):
		return model.Receipt{}, invalid("payer email is required")
	case !utils.IsValidEmail(req.PayerEmail):
		return model.Receipt{}, invalid("payer email %q is malformed", req.PayerEmail)
	case utils.IsBlank(req.PayerName):
		return model.Receipt{}, invalid("payer name is required")
	}

	mode := utils.OrDefault(req.ModeOfPayment, defaultPaymentMode)
	if !model.IsValidPaymentMode(mode) {
		return model.Receipt{}, invalid("unknown mode of payment %q", mode)
	}

	now := f.now().UTC()
	r := model.Receipt{
		Number:      receipt.NewNumber(model.ManualReceipt, now),
		Date:        now,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Payer: model.Party{
			Name:  strings.TrimSpace(req.PayerName),
			Email: strings.ToLower(strings.TrimSpace(req.PayerEmail)),
			Phone: utils.OrDefault(req.PayerPhone, placeholderContact),
			Role:  utils.OrDefault(req.PayerRole, defaultPayerRole),
		},
		Receiver: model.Party{
			Name:  utils.OrDefault(s.Identity.DisplayName, placeholderReceiver),
			Email: f.club.Email,
			Phone: f.club.Phone,
			Role:  issuerRole,
		},
		ModeOfPayment: mode,
		Type:          model.ManualReceipt,
		GeneratedBy:   s.Identity.DisplayName,
	}

	saved, err := f.store.AddReceipt(ctx, r)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("add receipt: %w", err)
	}

	f.metrics.ReceiptsIssued.WithLabelValues(string(saved.Type)).Inc()
	f.notifier.NotifyReceipt(saved)

	return saved, nil
}

// ListReceipts shows finance managers every receipt and everyone else the
// receipts paid under their email.
func (f *Finance) ListReceipts(ctx context.Context, s *access.Session) (model.Result[[]model.Receipt], error) {
	if err := requireSession(s); err != nil {
		return model.Result[[]model.Receipt]{}, err
	}

	payer := strings.ToLower(s.Identity.Email)
	if f.policy.HasRole(s, access.FinanceManagers...) {
		payer = ""
	}

	list, err := f.store.ListReceipts(ctx, payer)
	if err != nil {
		return degrade(f.logger, f.metrics, "receipts", []model.Receipt{}, err), nil
	}
	return model.OK(list), nil
}

func (f *Finance) visibleReceipt(ctx context.Context, s *access.Session, id string) (model.Receipt, error) {
	if err := requireSession(s); err != nil {
		return model.Receipt{}, err
	}

	r, err := f.store.GetReceipt(ctx, id)
	if err != nil {
		return model.Receipt{}, fmt.Errorf("get receipt %s: %w", id, err)
	}

	if !f.policy.HasRole(s, access.FinanceManagers...) && !strings.EqualFold(r.Payer.Email, s.Identity.Email) {
		return model.Receipt{}, fmt.Errorf("%w: receipt %s", errs.ErrForbidden, id)
	}
	return r, nil
}

func (f *Finance) RenderReceipt(ctx context.Context, s *access.Session, id string) ([]byte, error) {
	r, err := f.visibleReceipt(ctx, s, id)
	if err != nil {
		return nil, err
	}
	return receipt.Render(r, f.club)
}

// ResendReceipt is the manual recovery path for a receipt email that was not delivered.
func (f *Finance) ResendReceipt(ctx context.Context, s *access.Session, id string) error {
	if err := f.requireFinance(s); err != nil {
		return err
	}

	r, err := f.store.GetReceipt(ctx, id)
	if err != nil {
		return fmt.Errorf("get receipt %s: %w", id, err)
	}
	if !utils.IsValidEmail(r.Payer.Email) {
		return invalid("receipt %s has no deliverable payer email", r.Number)
	}

	if err := f.sender.SendReceipt(ctx, r); err != nil {
		return fmt.Errorf("%w: receipt %s: %v", errs.ErrNotification, r.Number, err)
	}
	f.metrics.NotificationsSent.Inc()
	return nil
}

func (f *Finance) ListNotificationFailures(ctx context.Context, s *access.Session) (model.Result[[]model.NotificationFailure], error) {
	if err := f.requireFinance(s); err != nil {
		return model.Result[[]model.NotificationFailure]{}, err
	}

	list, err := f.store.ListNotificationFailures(ctx)
	if err != nil {
		return degrade(f.logger, f.metrics, "notification_failures", []model.NotificationFailure{}, err), nil
	}
	return model.OK(list), nil
}
