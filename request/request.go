// Package request implements weaver's request value object and the
// FromRequest extractor model: typed, side-effectful decomposition of a
// request into handler arguments, each run in declared order, any one of
// which may reject with a response-producing value.
package request

import (
	"net/http"
	"sync/atomic"

	"github.com/weaverhttp/weaver/ext"
	"github.com/weaverhttp/weaver/response"
)

// Request wraps the underlying HTTP request plus weaver's own
// path-parameter map and type-keyed extensions. At most one extractor in
// a handler's argument list may consume it wholesale (the terminal
// extractor, FromRaw), which sets a one-shot taken flag; a second FromRaw
// on the same Request panics. The other extractors and direct field
// access do not check the flag.
type Request struct {
	HTTP       *http.Request
	Header     http.Header
	Params     map[string]string
	Extensions ext.Map
	Body       []byte

	taken atomic.Bool
}

// New builds a Request from an underlying *http.Request, the resolved
// path-parameter map, and a pre-read body (the root weaver package's
// Server.httpHandler reads the full body once up front, before the
// handler runs).
func New(r *http.Request, params map[string]string, body []byte) *Request {
	return &Request{
		HTTP:   r,
		Header: r.Header,
		Params: params,
		Body:   body,
	}
}

// take marks the request as consumed, panicking if it already was. Every
// terminal, whole-request-consuming extractor calls this first.
func (r *Request) take(who string) {
	if !r.taken.CompareAndSwap(false, true) {
		panic("weaver/request: " + who + " attempted to consume a Request that was already taken by an earlier extractor")
	}
}

// Extractor is any type that can be produced from a *Request, either
// returning a value or a rejection (itself a response.Part, applied
// directly onto the in-progress response by the handler adapter).
type Extractor[T any] interface {
	FromRequest(r *Request) (T, response.Part)
}

// ExtractorFunc names the plain-function extractor shape that the
// handler package's generated adapters take as arguments. The built-ins
// below (FromHeaders, FromPath, ...) are plain functions of this shape.
type ExtractorFunc[T any] func(r *Request) (T, response.Part)

// Extract calls f. ExtractorFunc has no FromRequest method, so it does
// not satisfy the Extractor interface.
func (f ExtractorFunc[T]) Extract(r *Request) (T, response.Part) { return f(r) }

// Headers moves the request's header map out, leaving it empty. A second
// Headers extraction on the same request yields an empty map, matching
// the move semantics of Path and Extensions.
type Headers http.Header

// FromHeaders extracts and takes ownership of the request's headers.
func FromHeaders(r *Request) (Headers, response.Part) {
	h := r.Header
	r.Header = make(http.Header)
	return Headers(h), nil
}

// FromExtensions moves the request's extension map out, leaving it
// empty.
func FromExtensions(r *Request) (ext.Map, response.Part) {
	return r.Extensions.Take(), nil
}

// Path moves the path-parameter map out, leaving it empty.
type Path map[string]string

// FromPath extracts and takes ownership of the resolved path parameters.
func FromPath(r *Request) (Path, response.Part) {
	p := r.Params
	r.Params = make(map[string]string)
	return Path(p), nil
}

// FromRaw is the terminal extractor: it takes ownership of the entire
// Request, just like using *Request itself as a handler's final
// argument. Using it anywhere but as the last extractor in a handler's
// argument list is a programmer error caught at runtime by the take-flag
// panic, not by this extractor itself.
func FromRaw(r *Request) (*Request, response.Part) {
	r.take("request.Raw")
	return r, nil
}
