package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's collectors on a private registry so that
// parallel servers (and tests) never collide on the default one.
type metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	renders     *prometheus.CounterVec
	pages       prometheus.Histogram
	rateLimited prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume_pdf",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "resume_pdf",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resume_pdf",
			Name:      "renders_total",
			Help:      "PDF renders by template and outcome.",
		}, []string{"template", "outcome"}),
		pages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "resume_pdf",
			Name:      "rendered_pages",
			Help:      "Page count of rendered documents.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8},
		}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resume_pdf",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.duration, m.renders, m.pages, m.rateLimited,
	)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) observeRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *metrics) observeRender(template string, pages int, err error) {
	if err != nil {
		m.renders.WithLabelValues(template, "error").Inc()
		return
	}
	m.renders.WithLabelValues(template, "ok").Inc()
	m.pages.Observe(float64(pages))
}
