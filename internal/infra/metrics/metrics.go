// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	domainerrors "rewards/internal/domain/errors"
	"rewards/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rewards"

// ClaimsTotal counts finished claim attempts by payment method and outcome code.
var ClaimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "claims_total",
	Help:      "Claim attempts by payment method and outcome",
}, []string{"payment_method", "outcome"})

// ClaimsCancelledTotal counts unpaid claims moved to FAILED, by trigger.
var ClaimsCancelledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "claims_cancelled_total",
	Help:      "Unpaid claims cancelled by trigger",
}, []string{"trigger"})

// LedgerEntriesTotal counts appended ledger entries.
var LedgerEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "ledger_entries_total",
	Help:      "Appended ledger entries by ledger and direction",
}, []string{"ledger", "direction"})

// RedemptionsTotal counts redemption attempts by outcome code.
var RedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "redemptions_total",
	Help:      "Redemption attempts by outcome",
}, []string{"outcome"})

// MissionCompletionsTotal counts mission completions by frequency.
var MissionCompletionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "mission_completions_total",
	Help:      "Mission completions by frequency and disbursement mode",
}, []string{"frequency", "disbursement"})

// EventsPublishedTotal counts after-commit publishes by event name and result.
var EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "events_published_total",
	Help:      "Domain events published after commit",
}, []string{"event", "result"})

// EventsConsumedTotal counts consumed events by name and result.
var EventsConsumedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "events_consumed_total",
	Help:      "Domain events consumed by the worker",
}, []string{"event", "result"})

// GatewayRequestDuration observes payment gateway latency.
var GatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "payment_gateway_request_duration_seconds",
	Help:      "Payment gateway CreateTransaction latency",
	Buckets:   prometheus.DefBuckets,
}, []string{"provider", "result"})

// HTTPRequestDuration observes API latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request latency by route, method and status",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method", "status"})

// DBPoolWaitsTotal counts connection waits on a database pool.
var DBPoolWaitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "db_pool_waits_total",
	Help:      "Times a query waited for a free connection",
}, []string{"pool"})

// DBPoolWaitSeconds accumulates time spent waiting for a connection.
var DBPoolWaitSeconds = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "db_pool_wait_seconds_total",
	Help:      "Time spent waiting for a free connection",
}, []string{"pool"})

// DBPoolInUse is the number of connections in use at the last sample.
var DBPoolInUse = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "db_pool_in_use_connections",
	Help:      "Connections in use at the last pool sample",
}, []string{"pool"})

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Outcome maps an error to a low-cardinality label value.
func Outcome(err error) string {
	if err == nil {
		return "success"
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode()
	}

	return "error"
}
