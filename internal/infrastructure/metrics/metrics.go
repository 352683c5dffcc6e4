// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "copilot_dashboard"

// Metrics holds the collectors of one process. Each instance owns its registry.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP surface
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// GitHub sync
	SyncRunsTotal      *prometheus.CounterVec
	SyncDuration       prometheus.Histogram
	SyncedUsersTotal   prometheus.Counter
	SyncedMetricsTotal prometheus.Counter

	// Upstream calls made by the GitHub client
	GitHubRequestsTotal *prometheus.CounterVec

	MaturityUsers *prometheus.GaugeVec
}

// New creates and registers every collector, plus the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Number of HTTP requests by route, method and status code.",
			},
			[]string{"route", "method", "code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method"},
		),

		SyncRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sync_runs_total",
				Help:      "GitHub sync runs by outcome.",
			},
			[]string{"status"}, // success, warnings, failed
		),
		SyncDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sync_duration_seconds",
				Help:      "Duration of GitHub sync runs.",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
			},
		),
		SyncedUsersTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "synced_users_total",
				Help:      "Users created or updated by sync.",
			},
		),
		SyncedMetricsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "synced_metrics_total",
				Help:      "Daily metrics rows written by sync.",
			},
		),

		GitHubRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "github_requests_total",
				Help:      "Requests sent to the GitHub API by status code and method.",
			},
			[]string{"code", "method"},
		),

		MaturityUsers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "maturity_users",
				Help:      "Users per maturity level after the last recompute.",
			},
			[]string{"level"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SyncRunsTotal,
		m.SyncDuration,
		m.SyncedUsersTotal,
		m.SyncedMetricsTotal,
		m.GitHubRequestsTotal,
		m.MaturityUsers,
	)
	return m
}

// Registry returns the registry backing Handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// EchoMiddleware counts and times every request except the scrape endpoint itself.
func (m *Metrics) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				// the error handler has not written the response yet
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method
			m.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// ObserveSync records one finished sync run.
func (m *Metrics) ObserveSync(status string, duration time.Duration, usersSynced, metricsSynced int) {
	m.SyncRunsTotal.WithLabelValues(status).Inc()
	m.SyncDuration.Observe(duration.Seconds())
	m.SyncedUsersTotal.Add(float64(usersSynced))
	m.SyncedMetricsTotal.Add(float64(metricsSynced))
}

// SetMaturityDistribution replaces the per-level user gauge.
func (m *Metrics) SetMaturityDistribution(distribution map[string]int64) {
	m.MaturityUsers.Reset()
	for level, count := range distribution {
		m.MaturityUsers.WithLabelValues(level).Set(float64(count))
	}
}

// InstrumentTransport counts GitHub API calls made through rt.
func (m *Metrics) InstrumentTransport(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return promhttp.InstrumentRoundTripperCounter(m.GitHubRequestsTotal, rt)
}
