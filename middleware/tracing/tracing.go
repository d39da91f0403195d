// Package tracing is a built-in middleware starting one OpenTelemetry
// span per request, grounded on how weaver's teacher instruments its own
// HTTP handling.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

// New returns a middleware that starts a span named "weaver.request" on
// tracerName's tracer, tagging it with method/path/status and marking
// it errored on a 5xx response or a handler error.
func New(tracerName string) middleware.Middleware {
	tracer := otel.Tracer(tracerName)
	return middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		ctx, span := tracer.Start(r.HTTP.Context(), "weaver.request",
			trace.WithAttributes(
				attribute.String("http.method", r.HTTP.Method),
				attribute.String("http.path", r.HTTP.URL.Path),
			),
		)
		defer span.End()
		r.HTTP = r.HTTP.WithContext(ctx)

		resp, err := next.Call(r)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return resp, err
		}
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.Status))
			if resp.Status >= 500 {
				span.SetStatus(codes.Error, "server error")
			}
		}
		return resp, nil
	})
}
