package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dshills/netsim/pkg/model"
)

// Registry owns every metric this engine exposes, registered against a
// private prometheus.Registry rather than the global default so multiple
// engines in one process don't collide.
type Registry struct {
	reg *prometheus.Registry

	interfaceTraffic  *prometheus.GaugeVec
	interfaceReserved *prometheus.GaugeVec
	interfaceUtil     *prometheus.GaugeVec
	lspOutcomes       *prometheus.CounterVec
	demandOutcomes    *prometheus.CounterVec
	ticksRun          prometheus.Counter
}

// NewRegistry creates and registers every metric.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		interfaceTraffic: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "netsim_interface_traffic",
			Help: "Demand traffic attributed to an interface by the last simulation tick.",
		}, []string{"node", "interface"}),
		interfaceReserved: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "netsim_interface_reserved_bandwidth",
			Help: "LSP-reserved bandwidth on an interface after the last simulation tick.",
		}, []string{"node", "interface"}),
		interfaceUtil: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "netsim_interface_utilization",
			Help: "traffic / capacity for an interface after the last simulation tick.",
		}, []string{"node", "interface"}),
		lspOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "netsim_lsp_outcomes_total",
			Help: "Count of LSP placement outcomes by result (routed, unrouted).",
		}, []string{"result"}),
		demandOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "netsim_demand_outcomes_total",
			Help: "Count of demand routing outcomes by result (routed, unrouted).",
		}, []string{"result"}),
		ticksRun: factory.NewCounter(prometheus.CounterOpts{
			Name: "netsim_ticks_total",
			Help: "Number of simulate() ticks run.",
		}),
	}
}

// Observe records one tick's outcome: interface gauges are overwritten
// (they reflect current state, not a rate), while the outcome counters are
// incremented by however many LSPs/demands ended each way this tick.
func (r *Registry) Observe(net *model.Network) {
	r.ticksRun.Inc()

	for _, iface := range net.Interfaces {
		labels := prometheus.Labels{"node": iface.NodeName, "interface": iface.Name}
		r.interfaceTraffic.With(labels).Set(iface.Traffic)
		r.interfaceReserved.With(labels).Set(iface.ReservedBandwidth)
		r.interfaceUtil.With(labels).Set(iface.Utilization())
	}

	for _, lsp := range net.LSPs {
		if lsp.Routed {
			r.lspOutcomes.WithLabelValues("routed").Inc()
		} else {
			r.lspOutcomes.WithLabelValues("unrouted").Inc()
		}
	}

	for _, d := range net.Demands {
		if d.Path.Routed {
			r.demandOutcomes.WithLabelValues("routed").Inc()
		} else {
			r.demandOutcomes.WithLabelValues("unrouted").Inc()
		}
	}
}

// Handler returns the HTTP handler exposing the registry in the
// Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Serve starts a metrics listener on addr and blocks until ctx is
// cancelled, then shuts the server down gracefully.
func (r *Registry) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}
