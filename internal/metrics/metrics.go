package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the club's business events.
type Metrics struct {
	OrdersCreated        *prometheus.CounterVec
	OrdersConfirmed      prometheus.Counter
	ReceiptsIssued       *prometheus.CounterVec
	NotificationsSent    prometheus.Counter
	NotificationFailures *prometheus.CounterVec
	DegradedReads        *prometheus.CounterVec
}

// MustNewMetrics registers the collectors with reg and panics on duplicates.
// Tests should pass a fresh prometheus.NewRegistry().
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		OrdersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "jerseys",
			Name:      "orders_created_total",
			Help:      "Jersey orders created, by initial status.",
		}, []string{"status"}),
		OrdersConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "jerseys",
			Name:      "orders_confirmed_total",
			Help:      "Jersey orders moved from PENDING to CONFIRMED.",
		}),
		ReceiptsIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "receipts",
			Name:      "issued_total",
			Help:      "Receipts persisted, by receipt type.",
		}, []string{"type"}),
		NotificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Receipt emails handed to the mail provider.",
		}),
		NotificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "notifications",
			Name:      "failures_total",
			Help:      "Receipt emails that were not delivered, by reason.",
		}, []string{"reason"}),
		DegradedReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clubhouse",
			Subsystem: "storage",
			Name:      "degraded_reads_total",
			Help:      "Reads that fell back to a default value, by collection.",
		}, []string{"collection"}),
	}

	reg.MustRegister(
		m.OrdersCreated,
		m.OrdersConfirmed,
		m.ReceiptsIssued,
		m.NotificationsSent,
		m.NotificationFailures,
		m.DegradedReads,
	)
	return m
}
