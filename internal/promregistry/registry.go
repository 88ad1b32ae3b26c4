package promregistry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry *prometheus.Registry
var auto promauto.Factory

func init() {
	registry = prometheus.NewRegistry()
	auto = promauto.With(registry)
}

// Auto returns a promauto factory bound to a private registry so the default
// registry's runtime collectors never leak into the notary's metrics.
func Auto() promauto.Factory {
	return auto
}

func Registry() *prometheus.Registry {
	return registry
}
