// Package compress is a built-in response-compressing middleware using
// klauspost/compress's gzip implementation.
package compress

import (
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

// New returns a middleware that gzips the response body when the
// request's Accept-Encoding header names gzip and the body is large
// enough to be worth it (bodies under minSize bytes are left alone).
func New(minSize int) middleware.Middleware {
	return middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		resp, err := next.Call(r)
		if err != nil {
			return resp, err
		}
		if !acceptsGzip(r) || len(resp.Body) < minSize {
			return resp, nil
		}
		if resp.Header.Get("Content-Encoding") != "" {
			return resp, nil
		}

		var buf strings.Builder
		gw := gzip.NewWriter(&buf)
		if _, writeErr := gw.Write(resp.Body); writeErr != nil {
			return resp, writeErr
		}
		if closeErr := gw.Close(); closeErr != nil {
			return resp, closeErr
		}

		resp.Body = []byte(buf.String())
		resp.Header.Set("Content-Encoding", "gzip")
		resp.Header.Set("Vary", "Accept-Encoding")
		return resp, nil
	})
}

func acceptsGzip(r *request.Request) bool {
	for _, enc := range strings.Split(r.HTTP.Header.Get("Accept-Encoding"), ",") {
		if strings.TrimSpace(enc) == "gzip" {
			return true
		}
	}
	return false
}
