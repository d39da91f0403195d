// Package response implements weaver's response composition model: a
// Response value object plus the Part interface, whose implementations
// each mutate a Response in a defined way. Handler return values (and
// tuples thereof, see tuple_gen.go) apply their parts left to right,
// later parts overwriting earlier ones except where a Part explicitly
// merges instead of replacing (Extend).
package response

import (
	"net/http"

	"github.com/weaverhttp/weaver/ext"
)

// Response is the value under construction by a handler's response
// parts. It starts out empty (status 200, no headers, no body) and is
// mutated in place as each Part applies.
type Response struct {
	Status     int
	Header     http.Header
	Extensions ext.Map
	Body       []byte
}

// New returns a fresh, empty Response — status 200, empty header map, nil
// body — the starting point for every handler invocation.
func New() *Response {
	return &Response{
		Status: http.StatusOK,
		Header: make(http.Header),
	}
}

// Part is any value that can mutate a Response in a defined way. Tuples
// of Parts (Tuple2..Tuple13, see tuple_gen.go) apply their members in
// declaration order, so a handler can return a heterogeneous composition
// that builds the response declaratively.
type Part interface {
	Apply(r *Response) error
}

// PartFunc adapts a plain function to the Part interface.
type PartFunc func(r *Response) error

// Apply implements Part.
func (f PartFunc) Apply(r *Response) error { return f(r) }

// Empty is a no-op Part, the translation of `()`/Infallible in the
// original design: applying it leaves the Response untouched.
type Empty struct{}

// Apply implements Part.
func (Empty) Apply(*Response) error { return nil }

// Apply implements Part for *Response itself: applying a Response
// replaces the in-progress one wholesale.
func (src *Response) Apply(dst *Response) error {
	*dst = *src
	return nil
}

// StatusCode sets the response status, overwriting any previous value.
type StatusCode int

// Apply implements Part.
func (s StatusCode) Apply(r *Response) error {
	r.Status = int(s)
	return nil
}

// HeaderMap replaces the response's entire header set.
type HeaderMap http.Header

// Apply implements Part.
func (h HeaderMap) Apply(r *Response) error {
	r.Header = http.Header(h).Clone()
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	return nil
}

// mergeable is implemented by Part types that Extend can wrap to merge
// instead of replace.
type mergeable interface {
	mergeInto(r *Response)
}

func (h HeaderMap) mergeInto(r *Response) {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	for k, vs := range http.Header(h) {
		for _, v := range vs {
			r.Header.Set(k, v)
		}
	}
}

// Extensions replaces the response's entire extension set.
type Extensions ext.Map

// Apply implements Part.
func (e Extensions) Apply(r *Response) error {
	r.Extensions.Replace(ext.Map(e))
	return nil
}

func (e Extensions) mergeInto(r *Response) {
	r.Extensions.Merge(ext.Map(e))
}

// Extend wraps a mergeable Part (HeaderMap or Extensions) so that, instead
// of replacing the corresponding slot, it merges into whatever is already
// there — inserting absent keys and overwriting present ones.
type Extend[T mergeable] struct{ Value T }

// Apply implements Part.
func (e Extend[T]) Apply(r *Response) error {
	e.Value.mergeInto(r)
	return nil
}

// Header inserts a single response header, per the `(K, HeaderValue)`
// built-in Part.
type Header struct {
	Key   string
	Value string
}

// Apply implements Part.
func (h Header) Apply(r *Response) error {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	r.Header.Set(h.Key, h.Value)
	return nil
}

// Headers inserts N headers in iteration order, per the `[(K, V); N]`
// built-in Part.
type Headers []Header

// Apply implements Part.
func (hs Headers) Apply(r *Response) error {
	for _, h := range hs {
		if err := h.Apply(r); err != nil {
			return err
		}
	}
	return nil
}

// Bytes sets the response body to raw bytes, per the `T: Into<Body>`
// built-in Part.
type Bytes []byte

// Apply implements Part.
func (b Bytes) Apply(r *Response) error {
	r.Body = []byte(b)
	return nil
}

// Text sets the response body to a UTF-8 string.
type Text string

// Apply implements Part.
func (t Text) Apply(r *Response) error {
	r.Body = []byte(t)
	return nil
}

// Result applies Value unless Err is non-nil, in which case it applies
// Err instead — the translation of `Result<Ok, Err>` where both branches
// are themselves response parts.
type Result[T Part] struct {
	Value T
	Err   Part
}

// Apply implements Part.
func (res Result[T]) Apply(r *Response) error {
	if res.Err != nil {
		return res.Err.Apply(r)
	}
	return res.Value.Apply(r)
}

// Either applies whichever of Left/Right is set — the translation of the
// `Either<L, R>` built-in Part. Exactly one of Left/Right should be
// non-nil; if both are, Left wins.
type Either[L, R Part] struct {
	Left  *L
	Right *R
}

// Apply implements Part.
func (e Either[L, R]) Apply(r *Response) error {
	if e.Left != nil {
		return (*e.Left).Apply(r)
	}
	if e.Right != nil {
		return (*e.Right).Apply(r)
	}
	return nil
}
