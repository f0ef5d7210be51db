package server

import (
	"net/http"
	"strconv"

	"github.com/and161185/clubhouse/internal/currency"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/go-chi/chi/v5"
)

type conversion struct {
	Amount    int64  `json:"amount"`
	Base      string `json:"base"`
	Currency  string `json:"currency"`
	Rate      string `json:"rate"`
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

// CurrencyHandler converts ?amount= (base currency) into ?to= for display.
func (srv *Server) CurrencyHandler(w http.ResponseWriter, r *http.Request) {
	target, err := currency.Parse(r.URL.Query().Get("to"))
	if err != nil {
		srv.writeError(w, err)
		return
	}

	var amount int64
	if raw := r.URL.Query().Get("amount"); raw != "" {
		amount, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "amount must be an integer", http.StatusBadRequest)
			return
		}
	}

	writeJSON(w, http.StatusOK, conversion{
		Amount:    amount,
		Base:      string(currency.Base),
		Currency:  string(target),
		Rate:      currency.Rate.String(),
		Value:     currency.Convert(amount, target).StringFixed(2),
		Formatted: currency.FormatMoney(amount, target),
	})
}

func (srv *Server) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.finance.ListTransactions(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (srv *Server) AddTransactionHandler(w http.ResponseWriter, r *http.Request) {
	var req model.TransactionRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := srv.finance.AddTransaction(r.Context(), session(r), req)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

func (srv *Server) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	display, err := currency.Parse(r.URL.Query().Get("currency"))
	if err != nil {
		srv.writeError(w, err)
		return
	}

	res, err := srv.finance.Summary(r.Context(), session(r), display)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (srv *Server) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.finance.ListOrders(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (srv *Server) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req model.JerseyOrderRequest
	if !decode(w, r, &req) {
		return
	}

	order, err := srv.finance.CreateOrder(r.Context(), session(r), req)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (srv *Server) ConfirmOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmOrderRequest
	if !decode(w, r, &req) {
		return
	}

	order, err := srv.finance.ConfirmOrder(r.Context(), session(r), chi.URLParam(r, "id"), req.Charged, req.Balance)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (srv *Server) ListReceiptsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.finance.ListReceipts(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (srv *Server) IssueReceiptHandler(w http.ResponseWriter, r *http.Request) {
	var req model.ManualReceiptRequest
	if !decode(w, r, &req) {
		return
	}

	rec, err := srv.finance.IssueManualReceipt(r.Context(), session(r), req)
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (srv *Server) PrintReceiptHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := srv.finance.RenderReceipt(r.Context(), session(r), chi.URLParam(r, "id"))
	if err != nil {
		srv.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (srv *Server) ResendReceiptHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.finance.ResendReceipt(r.Context(), session(r), chi.URLParam(r, "id")); err != nil {
		srv.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (srv *Server) ListFailuresHandler(w http.ResponseWriter, r *http.Request) {
	res, err := srv.finance.ListNotificationFailures(r.Context(), session(r))
	if err != nil {
		srv.writeError(w, err)
		return
	}
	writeResult(w, res)
}
