package models

import "github.com/prometheus/client_golang/prometheus"

var balanceUpdates = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "banktrack_balance_updates_total",
		Help: "Number of bank balance updates caused by transactions",
	},
	[]string{"type", "direction"},
)

// Collectors returns the metrics of the models package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{balanceUpdates}
}
