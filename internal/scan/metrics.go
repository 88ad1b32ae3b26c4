package scan

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sentinel-ops/sentinel/internal/promregistry"
)

var rangesScanned = promregistry.Auto().NewCounter(prometheus.CounterOpts{
	Name: "sentinel_scanned_ranges_total",
	Help: "Number of block ranges scanned for logs",
})

var eventsObserved = promregistry.Auto().NewCounter(prometheus.CounterOpts{
	Name: "sentinel_observed_events_total",
	Help: "Number of log events accumulated across scan runs",
})
