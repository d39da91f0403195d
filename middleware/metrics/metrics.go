// Package metrics is a built-in middleware recording per-request
// counters and latency histograms via prometheus/client_golang.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

// Collector owns the Prometheus vectors a weaver server's middleware
// reports into. NewCollector registers those vectors itself; Collector
// is not a prometheus.Collector and is not registered on its own.
type Collector struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewCollector builds and registers a Collector on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "weaver_http_requests_total",
			Help: "Total requests handled, by method, path and status code.",
		}, []string{"method", "path", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "weaver_http_request_duration_seconds",
			Help:    "Request handling latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	reg.MustRegister(c.requests, c.latency)
	return c
}

// Middleware returns the middleware itself, recording one observation
// per request against path (the registered route pattern, not the raw
// URL, to keep cardinality bounded).
func (c *Collector) Middleware(path string) middleware.Middleware {
	return middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		start := time.Now()
		resp, err := next.Call(r)
		c.latency.WithLabelValues(r.HTTP.Method, path).Observe(time.Since(start).Seconds())
		if resp != nil {
			c.requests.WithLabelValues(r.HTTP.Method, path, strconv.Itoa(resp.Status)).Inc()
		}
		return resp, err
	})
}
