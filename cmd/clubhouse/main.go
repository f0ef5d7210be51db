package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/config"
	"github.com/and161185/clubhouse/internal/deps"
	"github.com/and161185/clubhouse/internal/notify"
	"github.com/and161185/clubhouse/internal/server"
	"github.com/and161185/clubhouse/internal/service"
	"github.com/and161185/clubhouse/internal/storage"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	deps := deps.NewDependencies(cfg.Key, cfg.LogFile)
	logger := deps.Logger
	defer logger.Sync()

	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer closeStore()

	sender := newSender(cfg, logger)
	dispatcher := notify.NewDispatcher(sender, store, logger, deps.Metrics, cfg.NotifyWorkers, cfg.NotifyQueueSize)

	policy := access.NewPolicy(cfg.AdminEmails)
	accounts := service.NewAccounts(store, policy, deps.TokenManager, deps.Revocations, sender, cfg.PublicURL, logger, deps.Metrics)
	finance := service.NewFinance(store, policy, dispatcher, sender, cfg.Club, logger, deps.Metrics)
	content := service.NewContent(store, policy, logger, deps.Metrics)

	srv := server.NewServer(cfg, deps, accounts, finance, content, dispatcher)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal(err)
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (service.Storage, func(), error) {
	switch cfg.Backend {
	case config.BackendFirestore:
		store, err := storage.NewFirestoreStorage(ctx, cfg.FirestoreProject, cfg.FirestoreCredentials)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		store, err := storage.NewPostgresStorage(ctx, cfg.DatabaseURI)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
}

type sender interface {
	service.Sender
	notify.ReceiptSender
}

func newSender(cfg *config.Config, logger *zap.SugaredLogger) sender {
	if cfg.SendGridAPIKey == "" {
		logger.Warn("SendGrid API key is not set, emails will only be logged")
		return notify.NewLogSender(cfg.Club, logger)
	}
	return notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.MailFrom, cfg.MailFromName, cfg.Club, logger)
}
