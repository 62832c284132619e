package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dshills/inputstate/internal/input"
)

const metricsNamespace = "inputstate"

// collector exports input.Metrics and host Metrics snapshots.
type collector struct {
	input *input.Metrics
	host  *Metrics

	ticks         *prometheus.Desc
	events        *prometheus.Desc
	dropped       *prometheus.Desc
	peakBatch     *prometheus.Desc
	tickSeconds   *prometheus.Desc
	tickMax       *prometheus.Desc
	scriptErrors  *prometheus.Desc
	traceRecords  *prometheus.Desc
	uptimeSeconds *prometheus.Desc
}

func newCollector(in *input.Metrics, host *Metrics) *collector {
	desc := func(name, help string, labels ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "", name), help, labels, nil)
	}
	return &collector{
		input:         in,
		host:          host,
		ticks:         desc("ticks_total", "Update boundaries processed."),
		events:        desc("events_total", "Raw events ingested, by kind.", "kind"),
		dropped:       desc("dropped_events_total", "Terminal events dropped on a full queue."),
		peakBatch:     desc("peak_batch_events", "Largest number of events in one tick."),
		tickSeconds:   desc("tick_handling_seconds_total", "Time spent handling ticks."),
		tickMax:       desc("tick_handling_max_seconds", "Slowest tick handled."),
		scriptErrors:  desc("script_errors_total", "Failed on_tick calls."),
		traceRecords:  desc("trace_records_total", "Trace lines written."),
		uptimeSeconds: desc("uptime_seconds", "Seconds since start."),
	}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.ticks
	ch <- c.events
	ch <- c.dropped
	ch <- c.peakBatch
	ch <- c.tickSeconds
	ch <- c.tickMax
	ch <- c.scriptErrors
	ch <- c.traceRecords
	ch <- c.uptimeSeconds
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	in := c.input.Snapshot()
	host := c.host.Snapshot()

	ch <- prometheus.MustNewConstMetric(c.ticks, prometheus.CounterValue, float64(in.TicksTotal))
	for kind, n := range in.ByKind {
		ch <- prometheus.MustNewConstMetric(c.events, prometheus.CounterValue, float64(n), kind)
	}
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(in.DroppedEvents))
	ch <- prometheus.MustNewConstMetric(c.peakBatch, prometheus.GaugeValue, float64(in.PeakBatch))
	ch <- prometheus.MustNewConstMetric(c.tickSeconds, prometheus.CounterValue, host.TickSecondsTotal)
	ch <- prometheus.MustNewConstMetric(c.tickMax, prometheus.GaugeValue, float64(host.MaxTickNs)/1e9)
	ch <- prometheus.MustNewConstMetric(c.scriptErrors, prometheus.CounterValue, float64(host.ScriptErrors))
	ch <- prometheus.MustNewConstMetric(c.traceRecords, prometheus.CounterValue, float64(host.TraceRecords))
	ch <- prometheus.MustNewConstMetric(c.uptimeSeconds, prometheus.GaugeValue, in.Uptime.Seconds())
}

// newRegistry builds a registry with the input collector plus the Go
// runtime and process collectors.
func newRegistry(in *input.Metrics, host *Metrics) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	for _, c := range []prometheus.Collector{
		newCollector(in, host),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// metricsServer serves /metrics for a registry.
type metricsServer struct {
	srv    *http.Server
	ln     net.Listener
	logger zerolog.Logger
	done   chan struct{}
}

func startMetricsServer(addr string, reg *prometheus.Registry, logger zerolog.Logger) (*metricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, NewOperationError("listen", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	s := &metricsServer{
		srv: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		ln:     ln,
		logger: logger,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("metrics server stopped")
		}
	}()
	logger.Info().Str("addr", ln.Addr().String()).Msg("serving metrics")
	return s, nil
}

// Addr returns the bound listen address.
func (s *metricsServer) Addr() string {
	return s.ln.Addr().String()
}

func (s *metricsServer) shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := s.srv.Shutdown(ctx)
	<-s.done
	return err
}
