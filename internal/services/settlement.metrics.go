package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "settlement"

// SettlementMetrics is registered once per process on the given registerer.
type SettlementMetrics struct {
	ordersClaimed      *prometheus.CounterVec
	broadcasts         *prometheus.CounterVec
	retries            *prometheus.CounterVec
	terminal           *prometheus.CounterVec
	outboxPublishes    *prometheus.CounterVec
	processDueDuration *prometheus.HistogramVec
	activeTrackers     prometheus.Gauge
	stuckBroadcasting  *prometheus.GaugeVec
}

func NewSettlementMetrics(registerer prometheus.Registerer) *SettlementMetrics {
	factory := promauto.With(registerer)

	return &SettlementMetrics{
		ordersClaimed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "orders_claimed_total",
				Help:      "Orders moved from approved to claimed.",
			},
			[]string{"chain_id"},
		),
		broadcasts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "broadcasts_total",
				Help:      "Broadcast attempts by result.",
			},
			[]string{"chain_id", "result"},
		),
		retries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "retries_total",
				Help:      "Orders released back to approved, by reason.",
			},
			[]string{"chain_id", "reason"},
		),
		terminal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "orders_terminal_total",
				Help:      "Orders reaching confirmed or failed.",
			},
			[]string{"chain_id", "status", "reason"},
		),
		outboxPublishes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "ledger_credit_publishes_total",
				Help:      "Compensating credit publishes by result.",
			},
			[]string{"result"},
		),
		processDueDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "process_due_duration_seconds",
				Help:      "Duration of one ProcessDue run.",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"chain_id"},
		),
		activeTrackers: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "active_trackers",
				Help:      "Transactions currently being tracked.",
			},
		),
		stuckBroadcasting: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "stuck_broadcasting_orders",
				Help:      "Orders left in broadcasting past the stuck threshold.",
			},
			[]string{"chain_id"},
		),
	}
}

func (m *SettlementMetrics) OrdersClaimed(chainID string, n int) {
	m.ordersClaimed.WithLabelValues(chainID).Add(float64(n))
}

func (m *SettlementMetrics) Broadcast(chainID, result string) {
	m.broadcasts.WithLabelValues(chainID, result).Inc()
}

func (m *SettlementMetrics) Retry(chainID, reason string) {
	m.retries.WithLabelValues(chainID, reason).Inc()
}

func (m *SettlementMetrics) Terminal(chainID, status, reason string) {
	m.terminal.WithLabelValues(chainID, status, reason).Inc()
}

func (m *SettlementMetrics) OutboxPublish(result string) {
	m.outboxPublishes.WithLabelValues(result).Inc()
}

func (m *SettlementMetrics) ObserveProcessDue(chainID string, elapsed time.Duration) {
	m.processDueDuration.WithLabelValues(chainID).Observe(elapsed.Seconds())
}

func (m *SettlementMetrics) SetActiveTrackers(n int) {
	m.activeTrackers.Set(float64(n))
}

func (m *SettlementMetrics) SetStuckBroadcasting(chainID string, n int) {
	m.stuckBroadcasting.WithLabelValues(chainID).Set(float64(n))
}
