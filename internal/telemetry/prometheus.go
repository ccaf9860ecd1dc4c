package telemetry

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	requests           *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	listedPullRequests prometheus.Histogram
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prdecoration_http_requests_total",
				Help: "Total number of handled HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prdecoration_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		listedPullRequests: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "prdecoration_listed_pull_requests",
				Help:    "Number of pull requests returned by one list call",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250},
			},
		),
	}
}

// Middleware считает запросы и их длительность по шаблону маршрута.
func (m *PrometheusMetrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unknown"
			}
			method := c.Request().Method

			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.requestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// ObserveListedPullRequests записывает размер ответа list. Безопасен для nil.
func (m *PrometheusMetrics) ObserveListedPullRequests(count int) {
	if m == nil {
		return
	}
	m.listedPullRequests.Observe(float64(count))
}
