// Package group implements weaver's route-grouping builder: a Group
// collects routes and middleware under a shared base path and flattens,
// on attach, into a Registrar (the root Server, or another Group).
package group

import (
	"strings"

	"github.com/weaverhttp/weaver/handler"
	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/weavererr"
)

// Registrar is whatever a Group ultimately flattens its routes into.
// *weaver.Server implements it; Group itself does not need to, since
// nesting composes at the Group level (see Group method below).
type Registrar interface {
	Insert(method, path string, h handler.Handler) error
}

type routeEntry struct {
	method  string
	path    string
	handler handler.Handler
}

// Group is a builder: base path, ordered middleware list, and the routes
// registered directly on it (including ones folded in from a child
// Group). It is consumed by Into (or by a parent's Group method), not
// reused afterward.
type Group struct {
	basePath    string
	middlewares []middleware.Middleware
	routes      []routeEntry
}

// New returns an empty Group with base path "/".
func New() *Group {
	return &Group{basePath: "/"}
}

// Path sets the group's base path, replacing any previous value.
func (g *Group) Path(p string) *Group {
	g.basePath = p
	return g
}

// Middleware appends a middleware to the group's chain, in registration
// order (first appended is outermost once the group is flattened).
func (g *Group) Middleware(m middleware.Middleware) *Group {
	g.middlewares = append(g.middlewares, m)
	return g
}

// Route adds a terminal route at path (relative to the group's base
// path) for method.
func (g *Group) Route(method, path string, h handler.Handler) *Group {
	g.routes = append(g.routes, routeEntry{method: method, path: path, handler: h})
	return g
}

func (g *Group) Get(path string, h handler.Handler) *Group     { return g.Route("GET", path, h) }
func (g *Group) Post(path string, h handler.Handler) *Group    { return g.Route("POST", path, h) }
func (g *Group) Put(path string, h handler.Handler) *Group     { return g.Route("PUT", path, h) }
func (g *Group) Patch(path string, h handler.Handler) *Group   { return g.Route("PATCH", path, h) }
func (g *Group) Delete(path string, h handler.Handler) *Group  { return g.Route("DELETE", path, h) }
func (g *Group) Head(path string, h handler.Handler) *Group    { return g.Route("HEAD", path, h) }
func (g *Group) Options(path string, h handler.Handler) *Group { return g.Route("OPTIONS", path, h) }
func (g *Group) Connect(path string, h handler.Handler) *Group { return g.Route("CONNECT", path, h) }
func (g *Group) Trace(path string, h handler.Handler) *Group   { return g.Route("TRACE", path, h) }

// Group consumes child, prefixing each of its routes with child's own
// base path and wrapping each route's handler with child's middleware
// chain, then appends the result to the receiver's route list. Child
// middlewares are baked in now, so the parent's own middlewares wrap on
// top of them later, at flatten time.
func (g *Group) Group(child *Group) *Group {
	for _, route := range child.routes {
		path := concat(child.basePath, route.path)
		h := middleware.Chain(route.handler, child.middlewares...)
		g.routes = append(g.routes, routeEntry{method: route.method, path: path, handler: h})
	}
	return g
}

// Into flattens the group into reg: each route is prefixed with the
// group's base path and wrapped with the group's middleware chain, then
// registered. Duplicate (path, method) pairs within the group itself are
// rejected here, with the group-relative path in the message, before the
// registrar ever sees them — a duplicate caught at the registrar level
// would only name the final path, not which group it came from.
func (g *Group) Into(reg Registrar) error {
	seen := make(map[string]bool, len(g.routes))
	type final struct {
		method  string
		path    string
		handler handler.Handler
	}
	finals := make([]final, 0, len(g.routes))

	for _, route := range g.routes {
		path := concat(g.basePath, route.path)
		key := route.method + " " + path
		if seen[key] {
			return weavererr.Fmt(weavererr.RouteOccupied,
				"group %q: route %s %s is registered more than once in this group", g.basePath, route.method, path)
		}
		seen[key] = true
		finals = append(finals, final{
			method:  route.method,
			path:    path,
			handler: middleware.Chain(route.handler, g.middlewares...),
		})
	}

	for _, f := range finals {
		if err := reg.Insert(f.method, f.path, f.handler); err != nil {
			return err
		}
	}
	return nil
}

// concat joins a group base path and a route path per weaver's path
// concatenation rule: trim a's trailing slash, trim b's leading slash,
// join with exactly one slash. Two adjacent slashes never appear, and an
// empty a still yields a leading slash.
func concat(a, b string) string {
	a = strings.TrimSuffix(a, "/")
	b = strings.TrimPrefix(b, "/")
	return a + "/" + b
}
