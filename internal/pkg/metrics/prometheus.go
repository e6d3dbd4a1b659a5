// Package metrics exports caller-ID matching counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/endorses/telnum/internal/pkg/logger"
)

// Match results used as label values.
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Exporter serves match metrics on /metrics. A nil *Exporter is valid and
// records nothing.
type Exporter struct {
	enabled  atomic.Bool
	registry *prometheus.Registry
	mu       sync.Mutex
	server   *http.Server

	observed  *prometheus.CounterVec
	reloads   *prometheus.CounterVec
	watchlist prometheus.Gauge
	duration  prometheus.Histogram
}

// NewExporter creates an exporter with its own registry.
func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		observed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "telnum_match_observed_total",
			Help: "Observed numbers checked against the watchlist",
		}, []string{"result"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "telnum_watchlist_reloads_total",
			Help: "Watchlist reload attempts",
		}, []string{"status"}),
		watchlist: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "telnum_watchlist_numbers",
			Help: "Distinct numbers in the watchlist",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "telnum_match_duration_seconds",
			Help:    "Time spent matching one observed number",
			Buckets: []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
		}),
	}
	e.registry.MustRegister(
		prometheus.NewGoCollector(),
		e.observed, e.reloads, e.watchlist, e.duration,
	)
	return e
}

// Handler returns the /metrics and /health mux.
func (e *Exporter) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/health", e.healthHandler)
	return mux
}

// Enable starts serving on addr, e.g. ":9464".
func (e *Exporter) Enable(addr string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.server != nil {
		return
	}

	e.server = &http.Server{
		Addr:         addr,
		Handler:      e.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	srv := e.server
	go func() {
		logger.Info("Starting metrics server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server error", "error", err)
		}
	}()
	e.enabled.Store(true)
}

// Shutdown stops the metrics server if it runs.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.enabled.Store(false)
	if e.server == nil {
		return nil
	}
	err := e.server.Shutdown(ctx)
	e.server = nil
	return err
}

// RecordMatch counts one observed number.
func (e *Exporter) RecordMatch(matched bool, took time.Duration) {
	if e == nil {
		return
	}
	result := ResultMiss
	if matched {
		result = ResultHit
	}
	e.observed.WithLabelValues(result).Inc()
	e.duration.Observe(took.Seconds())
}

// RecordReload counts a watchlist reload and the resulting size.
func (e *Exporter) RecordReload(err error, size int) {
	if e == nil {
		return
	}
	if err != nil {
		e.reloads.WithLabelValues("error").Inc()
		return
	}
	e.reloads.WithLabelValues("ok").Inc()
	e.watchlist.Set(float64(size))
}

// SetWatchlistSize sets the watchlist gauge.
func (e *Exporter) SetWatchlistSize(size int) {
	if e == nil {
		return
	}
	e.watchlist.Set(float64(size))
}

func (e *Exporter) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
