// Package ratelimit is a built-in token-bucket rate limiting middleware
// backed by golang.org/x/time/rate.
package ratelimit

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

// New returns a middleware sharing a single token bucket across every
// request it sees: rps is the sustained rate, burst is the bucket
// capacity. A request that can't take a token immediately is rejected
// with 429 rather than made to wait, since weaver handlers must not
// block a shared fiber scheduler.
func New(rps float64, burst int) middleware.Middleware {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		if !limiter.Allow() {
			resp := response.New()
			resp.Status = http.StatusTooManyRequests
			resp.Body = []byte("rate limit exceeded")
			return resp, nil
		}
		return next.Call(r)
	})
}

// PerKey returns a middleware that rate limits independently per key,
// as returned by keyFunc for each request (e.g. a client IP or an
// authenticated user ID pulled from request extensions). Each distinct
// key gets its own token bucket, built lazily on first sight.
func PerKey(rps float64, burst int, keyFunc func(r *request.Request) string) middleware.Middleware {
	var mu sync.Mutex
	limiters := make(map[string]*rate.Limiter)
	return middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		key := keyFunc(r)

		mu.Lock()
		limiter, ok := limiters[key]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[key] = limiter
		}
		mu.Unlock()

		if !limiter.Allow() {
			resp := response.New()
			resp.Status = http.StatusTooManyRequests
			resp.Body = []byte("rate limit exceeded")
			return resp, nil
		}
		return next.Call(r)
	})
}
