package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

func TestNew_RecordsSpanWithStatusAttribute(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	prevProvider := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prevProvider)

	mw := New("weaver-test")
	next := middleware.Next(func(r *request.Request) (*response.Response, error) {
		resp := response.New()
		resp.Status = http.StatusOK
		return resp, nil
	})

	r := request.New(httptest.NewRequest(http.MethodGet, "/users", nil), nil, nil)
	_, err := mw.Process(r, next)
	require.NoError(t, err)
	require.NoError(t, tp.ForceFlush(r.HTTP.Context()))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "weaver.request", spans[0].Name)

	var sawStatus bool
	for _, attr := range spans[0].Attributes {
		if string(attr.Key) == "http.status_code" {
			sawStatus = true
			assert.EqualValues(t, http.StatusOK, attr.Value.AsInt64())
		}
	}
	assert.True(t, sawStatus)
}
