package notary

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sentinel-ops/sentinel/internal/promregistry"
)

var certificatesSealed = promregistry.Auto().NewCounter(prometheus.CounterOpts{
	Name: "sentinel_sealed_certificates_total",
	Help: "Number of certificates sealed and persisted",
})

var publishFailures = promregistry.Auto().NewCounter(prometheus.CounterOpts{
	Name: "sentinel_publish_failures_total",
	Help: "Number of failed content-addressed publish attempts",
})
