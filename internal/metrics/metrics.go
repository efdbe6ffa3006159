// Package metrics holds the Prometheus collectors for the wallet engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific collectors.
	Registry = prometheus.NewRegistry()

	Spins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wheel",
			Subsystem: "engine",
			Name:      "spins_total",
			Help:      "Total number of spin transactions by result.",
		},
		[]string{"result"},
	)

	Withdrawals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wheel",
			Subsystem: "engine",
			Name:      "withdrawals_total",
			Help:      "Total number of withdraw transactions by result.",
		},
		[]string{"result"},
	)

	PayoutFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wheel",
			Subsystem: "engine",
			Name:      "payout_failures_total",
			Help:      "Total number of failed or unconfirmed payout gateway calls.",
		},
	)

	WalletConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "wheel",
			Subsystem: "engine",
			Name:      "wallet_conflicts_total",
			Help:      "Total number of optimistic wallet transaction retries.",
		},
	)
)

func init() {
	Registry.MustRegister(Spins, Withdrawals, PayoutFailures, WalletConflicts)
}

// Handler serves the /metrics endpoint for the application registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ResultLabel maps a transaction outcome to the counter label.
func ResultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
