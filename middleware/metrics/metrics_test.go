package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

func TestMiddleware_RecordsRequestCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	mw := c.Middleware("/users")

	next := middleware.Next(func(r *request.Request) (*response.Response, error) {
		resp := response.New()
		resp.Status = http.StatusOK
		return resp, nil
	})

	r := request.New(httptest.NewRequest(http.MethodGet, "/users", nil), nil, nil)
	_, err := mw.Process(r, next)
	require.NoError(t, err)

	metricFamilies, err := reg.Gather()
	require.NoError(t, err)

	var found *dto.MetricFamily
	for _, mf := range metricFamilies {
		if mf.GetName() == "weaver_http_requests_total" {
			found = mf
		}
	}
	require.NotNil(t, found)
	require.Len(t, found.Metric, 1)
	assert.Equal(t, float64(1), found.Metric[0].GetCounter().GetValue())
}
