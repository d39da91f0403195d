package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaverhttp/weaver/weavererr"
)

func TestRouter_InsertAndResolve(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Insert(Route{Path: "/users", Method: "GET"}, "list-users"))

	h, params, err := r.Resolve("/users", "GET")
	require.NoError(t, err)
	assert.Equal(t, "list-users", h)
	assert.Empty(t, params)
}

func TestRouter_DuplicateRouteOccupied(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Insert(Route{Path: "/users", Method: "GET"}, "a"))
	err := r.Insert(Route{Path: "/users", Method: "GET"}, "b")
	require.Error(t, err)
	assert.True(t, weavererr.Is(err, weavererr.RouteOccupied))
}

func TestRouter_InvalidPath(t *testing.T) {
	r := New[string]()
	err := r.Insert(Route{Path: "users", Method: "GET"}, "a")
	require.Error(t, err)
	assert.True(t, weavererr.Is(err, weavererr.InvalidPath))

	err = r.Insert(Route{Path: "/users/{id}/content/{a}/{id}", Method: "GET"}, "b")
	require.Error(t, err)
	assert.True(t, weavererr.Is(err, weavererr.InvalidPath))
}

func TestRouter_PathParams(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Insert(Route{Path: "/path/{id}/content/{a}/{b}", Method: "GET"}, "handler"))

	h, params, err := r.Resolve("/path/42/content/x/y", "GET")
	require.NoError(t, err)
	assert.Equal(t, "handler", h)
	assert.Equal(t, map[string]string{"id": "42", "a": "x", "b": "y"}, params)
}

func TestRouter_LiteralBeatsCaptureAtSameDepth(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Insert(Route{Path: "/users/{id}", Method: "GET"}, "by-id"))
	require.NoError(t, r.Insert(Route{Path: "/users/me", Method: "GET"}, "me"))

	h, _, err := r.Resolve("/users/me", "GET")
	require.NoError(t, err)
	assert.Equal(t, "me", h)

	h, params, err := r.Resolve("/users/42", "GET")
	require.NoError(t, err)
	assert.Equal(t, "by-id", h)
	assert.Equal(t, "42", params["id"])
}

func TestRouter_BacktracksIntoCapture(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Insert(Route{Path: "/a/b/c", Method: "GET"}, "literal-only"))
	require.NoError(t, r.Insert(Route{Path: "/a/{x}/z", Method: "GET"}, "captured"))

	h, params, err := r.Resolve("/a/b/z", "GET")
	require.NoError(t, err)
	assert.Equal(t, "captured", h)
	assert.Equal(t, "b", params["x"])
}

func TestRouter_NotFound(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Insert(Route{Path: "/users", Method: "GET"}, "a"))

	_, _, err := r.Resolve("/nope", "GET")
	require.Error(t, err)
	assert.True(t, weavererr.Is(err, weavererr.NotFound))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Insert(Route{Path: "/methods", Method: "GET"}, "a"))
	require.NoError(t, r.Insert(Route{Path: "/methods", Method: "POST"}, "b"))
	require.NoError(t, r.Insert(Route{Path: "/methods", Method: "VOROJBA"}, "c"))

	h, _, err := r.Resolve("/methods", "VOROJBA")
	require.NoError(t, err)
	assert.Equal(t, "c", h)

	_, _, err = r.Resolve("/methods", "DELETE")
	require.Error(t, err)
	assert.True(t, weavererr.Is(err, weavererr.MethodNotAllowed))
}

func TestRouter_Routes(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Insert(Route{Path: "/a", Method: "GET"}, "x"))
	require.NoError(t, r.Insert(Route{Path: "/b/{id}", Method: "POST"}, "y"))

	routes := r.Routes()
	assert.Contains(t, routes, "GET /a")
	assert.Contains(t, routes, "POST /b/{id}")
}
