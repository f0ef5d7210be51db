package notify

import (
	"context"
	"sync"
	"time"

	"github.com/and161185/clubhouse/internal/metrics"
	"github.com/and161185/clubhouse/internal/model"
	"github.com/and161185/clubhouse/internal/utils"
	"go.uber.org/zap"
)

const (
	ReasonNoRecipient = "payer email unavailable"
	ReasonQueueFull   = "notification queue full"
	ReasonStopped     = "dispatcher stopped"
)

const recordTimeout = 5 * time.Second

type ReceiptSender interface {
	SendReceipt(ctx context.Context, r model.Receipt) error
}

type FailureLog interface {
	RecordNotificationFailure(ctx context.Context, f model.NotificationFailure) error
}

// Dispatcher delivers receipt emails on a pool of workers, detached from the
// request that issued the receipt. Every undelivered receipt ends up in the
// failure log. Nothing is retried automatically.
type Dispatcher struct {
	sender   ReceiptSender
	failures FailureLog
	logger   *zap.SugaredLogger
	metrics  *metrics.Metrics

	workers int
	queue   chan model.Receipt
	wg      sync.WaitGroup
	now     func() time.Time

	// mu guards stopped against sends racing the final drain.
	mu      sync.RWMutex
	stopped bool
}

func NewDispatcher(sender ReceiptSender, failures FailureLog, logger *zap.SugaredLogger, m *metrics.Metrics, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 10 * workers
	}
	return &Dispatcher{
		sender:   sender,
		failures: failures,
		logger:   logger,
		metrics:  m,
		workers:  workers,
		queue:    make(chan model.Receipt, queueSize),
		now:      time.Now,
	}
}

// Start runs the workers until ctx is done. Receipts still queued at that
// point are recorded as failures.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work(ctx)
	}
}

// Wait blocks until every worker has exited.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// NotifyReceipt never blocks. Receipts handed over after the workers stopped
// go straight to the failure log.
func (d *Dispatcher) NotifyReceipt(r model.Receipt) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.failAsync(r, "stopped", ReasonStopped)
		return
	}

	select {
	case d.queue <- r:
	default:
		d.failAsync(r, "queue_full", ReasonQueueFull)
	}
}

func (d *Dispatcher) failAsync(r model.Receipt, label, reason string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.fail(r, label, reason)
	}()
}

func (d *Dispatcher) stop() {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}

func (d *Dispatcher) work(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			d.stop()
			d.drain()
			return
		case r := <-d.queue:
			d.deliver(ctx, r)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case r := <-d.queue:
			d.fail(r, "stopped", ReasonStopped)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, r model.Receipt) {
	if !utils.IsValidEmail(r.Payer.Email) {
		d.fail(r, "no_recipient", ReasonNoRecipient)
		return
	}

	if err := d.sender.SendReceipt(ctx, r); err != nil {
		d.logger.Errorf("send receipt %s: %v", r.Number, err)
		d.fail(r, "send_error", err.Error())
		return
	}

	d.metrics.NotificationsSent.Inc()
	d.logger.Infof("receipt %s sent to %s", r.Number, r.Payer.Email)
}

// fail records on a fresh context so it outlives the request and the server.
func (d *Dispatcher) fail(r model.Receipt, label, reason string) {
	d.metrics.NotificationFailures.WithLabelValues(label).Inc()
	d.logger.Warnf("receipt %s not delivered: %s", r.Number, reason)

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	err := d.failures.RecordNotificationFailure(ctx, model.NotificationFailure{
		ReceiptID:     r.ID,
		ReceiptNumber: r.Number,
		Recipient:     r.Payer.Email,
		Reason:        reason,
		OccurredAt:    d.now().UTC(),
	})
	if err != nil {
		d.logger.Errorf("record notification failure for %s: %v", r.Number, err)
	}
}
