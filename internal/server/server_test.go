package server

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/auth"
	"github.com/and161185/clubhouse/internal/config"
	"github.com/and161185/clubhouse/internal/deps"
	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/metrics"
	"github.com/and161185/clubhouse/internal/middleware"
	"github.com/and161185/clubhouse/internal/mocks"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/and161185/clubhouse/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
)

type idleDispatcher struct{}

func (idleDispatcher) Start(context.Context) {}
func (idleDispatcher) Wait()                 {}

type fixture struct {
	srv      *Server
	router   http.Handler
	store    *mocks.MockStorage
	notifier *mocks.MockNotifier
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockStorage(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	sender := mocks.NewMockSender(ctrl)

	logger := zaptest.NewLogger(t).Sugar()
	reg := prometheus.NewRegistry()
	cfg := config.Default()
	cfg.AdminEmails = []string{"boss@akachai.example"}
	d := &deps.Deps{
		Logger:       logger,
		TokenManager: auth.NewTokenManager("testsecret"),
		Revocations:  auth.NewRevocations(16),
		Registry:     reg,
		Metrics:      metrics.MustNewMetrics(reg),
	}

	policy := access.NewPolicy(cfg.AdminEmails)
	accounts := service.NewAccounts(store, policy, d.TokenManager, d.Revocations, sender, cfg.PublicURL, logger, d.Metrics)
	finance := service.NewFinance(store, policy, notifier, sender, cfg.Club, logger, d.Metrics)
	content := service.NewContent(store, policy, logger, d.Metrics)

	srv := NewServer(cfg, d, accounts, finance, content, idleDispatcher{})
	return fixture{srv: srv, router: srv.buildRouter(), store: store, notifier: notifier}
}

// login expects the auth middleware to resolve identity once per request.
func (fx fixture) login(t *testing.T, identity model.Identity, requests int) string {
	t.Helper()

	token, err := fx.srv.deps.TokenManager.GenerateToken(identity.ID)
	require.NoError(t, err)
	fx.store.EXPECT().GetIdentityByID(gomock.Any(), identity.ID).Return(identity, nil).Times(requests)
	return token.Value
}

func newAuthenticatedRequest(method, path, token string, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func (fx fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	return w
}

var (
	treasurer = model.Identity{ID: "u2", Email: "treasurer@akachai.example", DisplayName: "Treasurer", Role: model.RoleFinance}
	media     = model.Identity{ID: "u3", Email: "media@akachai.example", DisplayName: "Media", Role: model.RoleContent}
	fan       = model.Identity{ID: "u4", Email: "fan@akachai.example", DisplayName: "Fan", Role: model.RoleMember}
)

func TestRegisterHandler(t *testing.T) {
	fx := setup(t)

	fx.store.EXPECT().
		CreateIdentity(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id model.Identity, _ string) (model.Identity, error) {
			id.ID = "u-new"
			return id, nil
		})

	payload := `{"email":"new@akachai.example","username":"Newbie","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := fx.serve(req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Header().Get("Authorization"), "Bearer "))

	var body sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, model.RoleMember, body.User.Role)
	require.NotEmpty(t, body.Token)
}

func TestRegisterHandlerConflict(t *testing.T) {
	fx := setup(t)

	fx.store.EXPECT().CreateIdentity(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Identity{}, errs.ErrEmailAlreadyExists)

	payload := `{"email":"new@akachai.example","username":"Newbie","password":"secret1"}`
	w := fx.serve(httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(payload)))
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginHandler(t *testing.T) {
	fx := setup(t)

	pw, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	fx.store.EXPECT().GetIdentityByEmail(gomock.Any(), "treasurer@akachai.example").Return(treasurer, string(pw), nil).Times(2)

	w := fx.serve(httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"email":"treasurer@akachai.example","password":"secret1"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	w = fx.serve(httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"email":"treasurer@akachai.example","password":"nope"}`)))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = fx.serve(httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{not json`)))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnauthenticatedRequest(t *testing.T) {
	fx := setup(t)

	w := fx.serve(httptest.NewRequest(http.MethodGet, "/api/finance/jerseys", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	fx := setup(t)
	token := fx.login(t, fan, 1)

	w := fx.serve(newAuthenticatedRequest(http.MethodPost, "/api/user/logout", token, ""))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = fx.serve(newAuthenticatedRequest(http.MethodGet, "/api/user/me", token, ""))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJerseyOrderFlow(t *testing.T) {
	fx := setup(t)

	fanToken := fx.login(t, fan, 1)
	fx.store.EXPECT().
		AddJerseyOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o model.JerseyOrder) (model.JerseyOrder, error) {
			o.ID = "order-1"
			return o, nil
		})

	body := `{"nameOnJersey":"J. Okello","contactInfo":"+256700000000","deliveryLocation":"Kampala"}`
	w := fx.serve(newAuthenticatedRequest(http.MethodPost, "/api/finance/jerseys", fanToken, body))
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.JerseyOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, model.Pending, created.Status)

	treasurerToken := fx.login(t, treasurer, 3)
	pending := created
	fx.store.EXPECT().GetJerseyOrder(gomock.Any(), "order-1").Return(pending, nil)
	fx.store.EXPECT().
		ConfirmJerseyOrder(gomock.Any(), "order-1", int64(50000), int64(10000), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, charged, balance int64, r model.Receipt) (model.JerseyOrder, model.Receipt, error) {
			o := pending
			o.Status = model.Confirmed
			o.AmountCharged = &charged
			o.BalanceDue = &balance
			o.ReceiptNumber = r.Number
			r.ID = "receipt-1"
			return o, r, nil
		})
	fx.notifier.EXPECT().NotifyReceipt(gomock.Any())

	w = fx.serve(newAuthenticatedRequest(http.MethodPost, "/api/finance/jerseys/order-1/confirm", treasurerToken, `{"charged":50000,"balance":10000}`))
	require.Equal(t, http.StatusOK, w.Code)

	var confirmed model.JerseyOrder
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
	require.Equal(t, model.Confirmed, confirmed.Status)
	require.True(t, strings.HasPrefix(confirmed.ReceiptNumber, "REC-"))

	w = fx.serve(newAuthenticatedRequest(http.MethodPost, "/api/finance/jerseys/order-1/confirm", treasurerToken, `{"charged":10000,"balance":15000}`))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	fx.store.EXPECT().GetJerseyOrder(gomock.Any(), "order-1").Return(confirmed, nil)
	w = fx.serve(newAuthenticatedRequest(http.MethodPost, "/api/finance/jerseys/order-1/confirm", treasurerToken, `{"charged":50000,"balance":10000}`))
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirmOrderForbiddenForContentManager(t *testing.T) {
	fx := setup(t)
	token := fx.login(t, media, 1)

	w := fx.serve(newAuthenticatedRequest(http.MethodPost, "/api/finance/jerseys/order-1/confirm", token, `{"charged":50000,"balance":10000}`))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestDegradedListResponse(t *testing.T) {
	fx := setup(t)
	token := fx.login(t, fan, 1)

	fx.store.EXPECT().ListReceipts(gomock.Any(), "fan@akachai.example").Return(nil, errs.ErrPermissionDenied)

	w := fx.serve(newAuthenticatedRequest(http.MethodGet, "/api/finance/receipts", token, ""))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data     []model.Receipt `json:"data"`
		Degraded bool            `json:"degraded"`
		Notice   string          `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Degraded)
	require.Equal(t, "data access restricted", body.Notice)
	require.NotNil(t, body.Data)
	require.Empty(t, body.Data)
}

func TestIssueReceiptHandler(t *testing.T) {
	fx := setup(t)
	token := fx.login(t, treasurer, 2)

	w := fx.serve(newAuthenticatedRequest(http.MethodPost, "/api/finance/receipts", token,
		`{"payerName":"Sarah","payerEmail":"","amount":5000,"description":"Donation"}`))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	fx.store.EXPECT().
		AddReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r model.Receipt) (model.Receipt, error) {
			r.ID = "receipt-2"
			return r, nil
		})
	fx.notifier.EXPECT().NotifyReceipt(gomock.Any())

	w = fx.serve(newAuthenticatedRequest(http.MethodPost, "/api/finance/receipts", token,
		`{"payerName":"Sarah","payerEmail":"sarah@example.com","amount":5000,"description":"Donation","modeOfPayment":"Mobile Money"}`))
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestPrintReceiptHandler(t *testing.T) {
	fx := setup(t)
	token := fx.login(t, treasurer, 1)

	fx.store.EXPECT().GetReceipt(gomock.Any(), "receipt-2").Return(model.Receipt{
		ID: "receipt-2", Number: "MAN-1-ABCDEF", Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), Amount: 5000,
		Payer: model.Party{Name: "Sarah", Email: "sarah@example.com"}, Receiver: model.Party{Name: "Treasurer", Role: "Administrator"},
		Type: model.ManualReceipt,
	}, nil)

	w := fx.serve(newAuthenticatedRequest(http.MethodGet, "/api/finance/receipts/receipt-2/print", token, ""))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
	require.Contains(t, w.Body.String(), "MAN-1-ABCDEF")
	require.Contains(t, w.Body.String(), "UGX 5,000")
}

func TestAllowListedAdminCanChangeRoles(t *testing.T) {
	fx := setup(t)
	boss := model.Identity{ID: "u9", Email: "boss@akachai.example", DisplayName: "Boss", Role: model.RoleMember}
	token := fx.login(t, boss, 1)

	fx.store.EXPECT().UpdateRole(gomock.Any(), "u4", model.RoleFinance).Return(nil)

	w := fx.serve(newAuthenticatedRequest(http.MethodPut, "/api/admin/users/u4/role", token, `{"role":"L2_ADMIN"}`))
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestProfileHandler(t *testing.T) {
	fx := setup(t)
	token := fx.login(t, fan, 1)
	fx.store.EXPECT().GetIdentityByID(gomock.Any(), fan.ID).Return(fan, nil)

	w := fx.serve(newAuthenticatedRequest(http.MethodGet, "/api/user/me", token, ""))
	require.Equal(t, http.StatusOK, w.Code)

	var got model.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, fan.Email, got.Email)
}

func TestProfileHandlerReadsSessionFromContext(t *testing.T) {
	fx := setup(t)
	fx.store.EXPECT().GetIdentityByID(gomock.Any(), fan.ID).Return(fan, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, &access.Session{Identity: fan}))

	w := httptest.NewRecorder()
	fx.srv.ProfileHandler(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCurrencyHandler(t *testing.T) {
	fx := setup(t)

	w := fx.serve(httptest.NewRequest(http.MethodGet, "/api/currency?amount=50000&to=usd", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body conversion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "USD", body.Currency)
	require.Equal(t, "13.51", body.Value)
	require.Equal(t, "$13.51", body.Formatted)

	w = fx.serve(httptest.NewRequest(http.MethodGet, "/api/currency?to=EUR", nil))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	fx := setup(t)

	w := fx.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "clubhouse_")
}

type recordingDispatcher struct {
	mu           sync.Mutex
	ctx          context.Context
	stoppedFirst bool
}

func (d *recordingDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ctx = ctx
}

func (d *recordingDispatcher) Wait() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stoppedFirst = d.ctx != nil && d.ctx.Err() != nil
}

func (d *recordingDispatcher) started() context.Context {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ctx
}

func TestRunKeepsDispatcherUntilShutdown(t *testing.T) {
	fx := setup(t)
	dispatcher := &recordingDispatcher{}
	fx.srv.dispatcher = dispatcher
	fx.srv.config.RunAddress = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fx.srv.Run(ctx) }()

	require.Eventually(t, func() bool { return dispatcher.started() != nil }, time.Second, 10*time.Millisecond)

	// the dispatcher runs on its own context and is stopped by Run after Shutdown
	require.NotSame(t, ctx, dispatcher.started())
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return")
	}
	require.True(t, dispatcher.stoppedFirst)
	require.Error(t, dispatcher.started().Err())
}

func TestLogMiddlewareSeesDecompressedBody(t *testing.T) {
	fx := setup(t)
	core, logs := observer.New(zapcore.InfoLevel)
	fx.srv.deps.Logger = zap.New(core).Sugar()
	router := fx.srv.buildRouter()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(`{"amount":5000,"category":"Jerseys"}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/finance/transactions", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	entries := logs.FilterMessageSnippet("uri=/api/finance/transactions").All()
	require.Len(t, entries, 1)
	require.Contains(t, entries[0].Message, `body={"amount":5000,"category":"Jerseys"}`)
}
