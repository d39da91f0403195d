// Package router implements weaver's path-matching core: a radix/trie
// path matcher whose leaves each hold a small method -> handler bucket.
// It is deliberately generic over the handler type (H) so it has no
// dependency on weaver's request/response/handler packages — those sit
// on top of it.
package router

import (
	"sort"

	"github.com/weaverhttp/weaver/weavererr"
)

// Route is the value object describing where and how a handler should be
// reached: a path pattern and an HTTP method (defaulting to GET when the
// zero value is used by a caller that forgets to set it explicitly — the
// Router itself never defaults; that's the Group/Server convenience
// layer's job).
type Route struct {
	Path   string
	Method string
}

// Router maps (path pattern, method) pairs to handlers of type H. At most
// one handler may be registered per (pattern, method) pair; registering a
// second is a RouteOccupied error. Once built, a Router is read-only and
// safe for concurrent use by many goroutines, matching the "router and
// handler adapters are immutable after server start" concurrency
// guarantee.
type Router[H any] struct {
	root *node[H]
}

// New returns an empty Router.
func New[H any]() *Router[H] {
	return &Router[H]{root: newNode[H]()}
}

// Insert registers handler at (route.Path, route.Method). It returns
// InvalidPath if the pattern is malformed, or RouteOccupied if that exact
// (path, method) pair already has a handler.
func (r *Router[H]) Insert(route Route, handler H) error {
	return r.root.insert(route.Path, route.Method, handler)
}

// Result is what At() returns on a successful path match: the bucket of
// method -> handler for that path, and the path parameters captured along
// the way.
type Result[H any] struct {
	Bucket *bucketHandle[H]
	Params map[string]string
}

// bucketHandle is a read-only view over a trie leaf's bucket, exposed
// outside the package without leaking the unexported bucket type itself.
type bucketHandle[H any] struct{ b *bucket[H] }

// Get returns the handler registered for method in this bucket.
func (bh *bucketHandle[H]) Get(method string) (H, bool) {
	return bh.b.get(method)
}

// AllowedMethods returns the sorted set of methods registered for this
// path, for building a 405 response's Allow header.
func (bh *bucketHandle[H]) AllowedMethods() []string {
	methods := bh.b.methods()
	sort.Strings(methods)
	return methods
}

// At resolves path to a bucket of candidate handlers plus path
// parameters. It returns weavererr.NotFound if no pattern matches path at
// all. The caller is then expected to look up the method in the returned
// bucket, getting weavererr.MethodNotAllowed if the path matched but the
// method didn't.
func (r *Router[H]) At(path string) (Result[H], error) {
	m, ok := r.root.at(path)
	if !ok {
		return Result[H]{}, weavererr.New(weavererr.NotFound, "no route matches path")
	}
	return Result[H]{Bucket: &bucketHandle[H]{b: m.bucket}, Params: m.params}, nil
}

// Resolve is the convenience one-shot form: look up path, then method,
// returning the handler directly or the precise NotFound/MethodNotAllowed
// error.
func (r *Router[H]) Resolve(path, method string) (H, map[string]string, error) {
	res, err := r.At(path)
	if err != nil {
		var zero H
		return zero, nil, err
	}
	h, ok := res.Bucket.Get(method)
	if !ok {
		var zero H
		return zero, res.Params, weavererr.Fmt(weavererr.MethodNotAllowed, "method %s not allowed", method)
	}
	return h, res.Params, nil
}

// Routes lists every registered "METHOD /path" pair, for introspection.
func (r *Router[H]) Routes() []string {
	var out []string
	r.root.collect("", &out)
	sort.Strings(out)
	return out
}
