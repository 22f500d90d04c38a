package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// TemplateStoreOps counts template store operations by op and result.
	TemplateStoreOps *prometheus.CounterVec
	// SearchLookupTotal counts debounced lookup outcomes; stale means the
	// response lost to a newer query and was dropped.
	SearchLookupTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers the module's
// Prometheus collectors. Safe to call once per process; components tolerate
// the collectors being nil when the host skips registration.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		TemplateStoreOps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "template_store_ops_total",
			Help:      "Count of template store operations by outcome.",
		}, []string{"op", "result"})
		SearchLookupTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_lookup_total",
			Help:      "Count of debounced search lookups by outcome.",
		}, []string{"result"})

		reg.MustRegister(TemplateStoreOps, SearchLookupTotal)
	})
}
