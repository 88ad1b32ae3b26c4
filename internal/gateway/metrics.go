package gateway

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sentinel-ops/sentinel/internal/promregistry"
)

var rpcRequests = promregistry.Auto().NewCounter(prometheus.CounterOpts{
	Name: "sentinel_rpc_log_requests_total",
	Help: "Number of successful eth_getLogs requests",
})

var rpcFailures = promregistry.Auto().NewCounter(prometheus.CounterOpts{
	Name: "sentinel_rpc_failures_total",
	Help: "Number of failed gateway rpc calls",
})
