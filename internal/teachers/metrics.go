package teachers

import "github.com/prometheus/client_golang/prometheus"

// Lookup tiers, used as the "tier" label.
const (
	TierMemory  = "memory"
	TierDurable = "durable"
	TierSource  = "source"
)

var lookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ufpeltheme",
	Name:      "teacher_lookups_total",
	Help:      "Teacher name lookups by the tier that answered them.",
}, []string{"tier"})

// Collectors returns the package's metrics for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{lookupsTotal}
}
