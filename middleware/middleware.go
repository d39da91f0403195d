// Package middleware implements weaver's per-group middleware layering:
// a Middleware wraps a Next handle representing "the rest of the chain
// below this layer"; chains fold right-to-left over a terminal handler
// so the first-registered middleware is outermost and sees the request
// first and the response last.
package middleware

import (
	"github.com/weaverhttp/weaver/handler"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

// Next is the downstream continuation a Middleware may invoke. It is a
// plain function value, cheap to pass down a chain built once at route
// finalization and reused across every request that reaches it.
type Next func(r *request.Request) (*response.Response, error)

// Call invokes the downstream chain.
func (n Next) Call(r *request.Request) (*response.Response, error) { return n(r) }

// Middleware interposes logic before/after a handler without changing
// the handler's signature. A middleware that wants to short-circuit the
// request returns early without calling next — there is no implicit
// exception channel, so an early return must itself carry a
// response.Part-compatible rejection via the handler/FuncN adapters, or
// build one directly.
type Middleware interface {
	Process(r *request.Request, next Next) (*response.Response, error)
}

// MiddlewareFunc adapts a plain function to Middleware.
type MiddlewareFunc func(r *request.Request, next Next) (*response.Response, error)

// Process implements Middleware.
func (f MiddlewareFunc) Process(r *request.Request, next Next) (*response.Response, error) {
	return f(r, next)
}

// Chain folds mws right-to-left over terminal, so mws[0] is outermost:
// for [m1, m2] the effective call is m1(m2(terminal)).
func Chain(terminal handler.Handler, mws ...Middleware) handler.Handler {
	h := handler.Handler(terminal)
	for i := len(mws) - 1; i >= 0; i-- {
		mw := mws[i]
		next := h
		h = func(r *request.Request) (*response.Response, error) {
			return mw.Process(r, Next(next))
		}
	}
	return h
}

func reject(resp *response.Response, rej response.Part) (*response.Response, error) {
	if err := rej.Apply(resp); err != nil {
		return resp, err
	}
	return resp, nil
}

func apply(resp *response.Response, part response.Part, err error) (*response.Response, error) {
	if err != nil {
		return resp, err
	}
	if part != nil {
		if applyErr := part.Apply(resp); applyErr != nil {
			return resp, applyErr
		}
	}
	return resp, nil
}
