package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/config"
	"github.com/and161185/clubhouse/internal/deps"
	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/middleware"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/and161185/clubhouse/internal/service"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dispatcher is the background notification pool started with the server.
type Dispatcher interface {
	Start(ctx context.Context)
	Wait()
}

type Server struct {
	config     *config.Config
	deps       *deps.Deps
	accounts   *service.Accounts
	finance    *service.Finance
	content    *service.Content
	dispatcher Dispatcher
}

func NewServer(cfg *config.Config, deps *deps.Deps, accounts *service.Accounts, finance *service.Finance, content *service.Content, dispatcher Dispatcher) *Server {
	return &Server{
		config:     cfg,
		deps:       deps,
		accounts:   accounts,
		finance:    finance,
		content:    content,
		dispatcher: dispatcher,
	}
}

func (srv *Server) buildRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.DecompressMiddleware)
	router.Use(middleware.LogMiddleware(srv.deps.Logger))
	router.Use(middleware.CompressMiddleware(srv.deps.Logger))

	router.Post("/api/user/register", srv.RegisterHandler)
	router.Post("/api/user/login", srv.LoginHandler)
	router.Post("/api/user/password/reset", srv.RequestPasswordResetHandler)
	router.Post("/api/user/password/reset/confirm", srv.ConfirmPasswordResetHandler)
	router.Get("/api/currency", srv.CurrencyHandler)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(srv.deps.Registry, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(srv.accounts))

		r.Post("/api/user/logout", srv.LogoutHandler)
		r.Get("/api/user/me", srv.ProfileHandler)
		r.Patch("/api/user/me", srv.UpdateProfileHandler)
		r.Post("/api/user/password", srv.ChangePasswordHandler)

		r.Get("/api/admin/users", srv.ListUsersHandler)
		r.Put("/api/admin/users/{id}/role", srv.UpdateRoleHandler)
		r.Patch("/api/admin/users/{id}", srv.UpdateUserHandler)

		r.Get("/api/finance/transactions", srv.ListTransactionsHandler)
		r.Post("/api/finance/transactions", srv.AddTransactionHandler)
		r.Get("/api/finance/summary", srv.SummaryHandler)
		r.Get("/api/finance/jerseys", srv.ListOrdersHandler)
		r.Post("/api/finance/jerseys", srv.CreateOrderHandler)
		r.Post("/api/finance/jerseys/{id}/confirm", srv.ConfirmOrderHandler)
		r.Get("/api/finance/receipts", srv.ListReceiptsHandler)
		r.Post("/api/finance/receipts", srv.IssueReceiptHandler)
		r.Get("/api/finance/receipts/{id}/print", srv.PrintReceiptHandler)
		r.Post("/api/finance/receipts/{id}/resend", srv.ResendReceiptHandler)
		r.Get("/api/finance/notifications/failures", srv.ListFailuresHandler)

		r.Get("/api/announcements", srv.ListAnnouncementsHandler)
		r.Post("/api/announcements", srv.AddAnnouncementHandler)
		r.Delete("/api/announcements/{id}", srv.DeleteAnnouncementHandler)
		r.Get("/api/stats/season", srv.SeasonStatsHandler)
		r.Put("/api/stats/season", srv.UpdateSeasonStatsHandler)
		r.Get("/api/stats/social", srv.SocialStatsHandler)
		r.Put("/api/stats/social/{platform}", srv.UpdateSocialStatsHandler)
	})

	return router
}

func (srv *Server) Run(ctx context.Context) error {
	router := srv.buildRouter()

	server := &http.Server{
		Addr:              srv.config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The dispatcher outlives ctx so receipts from requests still finishing
	// during shutdown are delivered or recorded.
	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()
	srv.dispatcher.Start(dispatchCtx)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			srv.deps.Logger.Fatalf("server error: %v", err)
		}
	}()
	srv.deps.Logger.Infof("listening on %s", srv.config.RunAddress)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := server.Shutdown(shutdownCtx)

	stopDispatch()
	srv.dispatcher.Wait()
	return err
}

type envelope[T any] struct {
	Data     T      `json:"data"`
	Degraded bool   `json:"degraded"`
	Notice   string `json:"notice,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeResult[T any](w http.ResponseWriter, res model.Result[T]) {
	writeJSON(w, http.StatusOK, envelope[T]{Data: res.Data, Degraded: res.Degraded, Notice: res.Reason})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return false
	}
	return true
}

func session(r *http.Request) *access.Session {
	return middleware.SessionFromContext(r.Context())
}

// writeError maps the error taxonomy onto HTTP statuses. Unexpected errors are
// logged and hidden from the caller.
func (srv *Server) writeError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, errs.ErrValidation):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidCredentials), errors.Is(err, errs.ErrInvalidToken):
		code = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrInvalidRole), errors.Is(err, errs.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrUserNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrEmailAlreadyExists), errors.Is(err, errs.ErrDuplicateReceipt):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrNotification):
		code = http.StatusBadGateway
	default:
		srv.deps.Logger.Errorf("request failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), code)
}
