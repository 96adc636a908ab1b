package spawnjoin

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors a Launcher updates.
type Metrics struct {
	Spawned       prometheus.Counter
	SpawnFailures prometheus.Counter
	ActiveWorkers prometheus.Gauge
}

// NewMetrics creates the launcher collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	m := &Metrics{
		Spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "launcher",
			Name:      "workers_spawned_total",
			Help:      "Total number of workers spawned",
		}),
		SpawnFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "launcher",
			Name:      "spawn_failures_total",
			Help:      "Total number of spawn attempts that could not allocate a worker",
		}),
		ActiveWorkers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "launcher",
			Name:      "active_workers",
			Help:      "Current number of running workers",
		}),
	}
	reg.MustRegister(m.Spawned, m.SpawnFailures, m.ActiveWorkers)
	return m
}
