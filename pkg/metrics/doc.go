// Package metrics exposes per-tick simulation outcomes as Prometheus
// metrics: interface traffic and reserved-bandwidth gauges, and LSP/demand
// routing-outcome counters, served over HTTP via promhttp.
//
// Metrics are registered against a private prometheus.Registry rather than
// the global default registry, via promauto.With(reg), so multiple engines
// can coexist in one process without name collisions.
package metrics
