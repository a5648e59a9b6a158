package count

import (
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsConfig struct {
	Namespace string `yaml:"Namespace"`
	Subsystem string `yaml:"Subsystem"`
}

// Collector exports the counts of a translation batch.
//
// Metrics:
//   - <namespace>_<subsystem>_nodes_total: translated nodes by kind
//   - <namespace>_<subsystem>_units_total: translated units by result (ok, failed)
type Collector struct {
	nodesTotal *prometheus.CounterVec
	unitsTotal *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them with registry.
func NewCollector(cfg MetricsConfig, registry prometheus.Registerer) *Collector {
	c := &Collector{
		nodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "nodes_total",
				Help:      "Total number of translated nodes by kind",
			},
			[]string{"kind"},
		),
		unitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "units_total",
				Help:      "Total number of translation units by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(c.nodesTotal, c.unitsTotal)
	return c
}

// Observe records one successfully translated unit.
func (c *Collector) Observe(counts Counts) {
	c.unitsTotal.WithLabelValues("ok").Inc()
	for kind, n := range counts {
		c.nodesTotal.WithLabelValues(kind).Add(float64(n))
	}
}

// Failed records one unit whose translation failed.
func (c *Collector) Failed() {
	c.unitsTotal.WithLabelValues("failed").Inc()
}
