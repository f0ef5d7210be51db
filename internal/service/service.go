// Package service implements the club's operations. Every gated method takes the
// caller's *access.Session explicitly and re-checks privileges before touching storage.
package service

import (
	"context"
	"errors"

	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/metrics"
	"github.com/and161185/clubhouse/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks github.com/and161185/clubhouse/internal/service Notifier,Sender,Storage

type Storage interface {
	CreateIdentity(ctx context.Context, identity model.Identity, passwordHash string) (model.Identity, error)
	GetIdentityByEmail(ctx context.Context, email string) (model.Identity, string, error)
	GetIdentityByID(ctx context.Context, id string) (model.Identity, error)
	ListIdentities(ctx context.Context) ([]model.Identity, error)
	UpdateIdentity(ctx context.Context, id string, update model.ProfileUpdate) error
	UpdateRole(ctx context.Context, id string, role model.Role) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)

	AddJerseyOrder(ctx context.Context, order model.JerseyOrder) (model.JerseyOrder, error)
	GetJerseyOrder(ctx context.Context, id string) (model.JerseyOrder, error)
	// ListJerseyOrders returns every order when orderedBy is empty.
	ListJerseyOrders(ctx context.Context, orderedBy string) ([]model.JerseyOrder, error)
	// ConfirmJerseyOrder sets billing on a PENDING order and persists its receipt
	// atomically. It fails with errs.ErrInvalidState if the order is no longer PENDING.
	ConfirmJerseyOrder(ctx context.Context, id string, charged, balance int64, r model.Receipt) (model.JerseyOrder, model.Receipt, error)

	AddReceipt(ctx context.Context, r model.Receipt) (model.Receipt, error)
	GetReceipt(ctx context.Context, id string) (model.Receipt, error)
	// ListReceipts returns every receipt when payerEmail is empty.
	ListReceipts(ctx context.Context, payerEmail string) ([]model.Receipt, error)

	RecordNotificationFailure(ctx context.Context, f model.NotificationFailure) error
	ListNotificationFailures(ctx context.Context) ([]model.NotificationFailure, error)

	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	AddAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error

	GetSeasonStats(ctx context.Context) (model.SeasonStats, bool, error)
	PutSeasonStats(ctx context.Context, s model.SeasonStats) error
	ListSocialStats(ctx context.Context) ([]model.SocialStats, error)
	UpsertSocialStats(ctx context.Context, s model.SocialStats) error
}

// Notifier queues a receipt email. It must not block the caller or report delivery errors.
type Notifier interface {
	NotifyReceipt(r model.Receipt)
}

// Sender delivers email synchronously.
type Sender interface {
	SendReceipt(ctx context.Context, r model.Receipt) error
	SendPasswordReset(ctx context.Context, email, link string) error
}

const NoticeRestricted = "data access restricted"
const NoticeUnavailable = "data temporarily unavailable"

// degrade turns a failed read into a fallback result.
func degrade[T any](logger *zap.SugaredLogger, m *metrics.Metrics, collection string, fallback T, err error) model.Result[T] {
	reason := NoticeUnavailable
	if errors.Is(err, errs.ErrPermissionDenied) {
		reason = NoticeRestricted
		logger.Warnf("read %s: permission denied, serving default", collection)
	} else {
		logger.Errorf("read %s: %v", collection, err)
	}
	m.DegradedReads.WithLabelValues(collection).Inc()
	return model.Degrade(fallback, reason)
}
