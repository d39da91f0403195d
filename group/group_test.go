package group

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaverhttp/weaver/handler"
	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
	"github.com/weaverhttp/weaver/weavererr"
)

func echo(body string) handler.Handler {
	return handler.Func0Request(func(r *request.Request) (response.Text, error) {
		return response.Text(body), nil
	})
}

type fakeRegistrar struct {
	inserts []struct {
		method, path string
		h            handler.Handler
	}
}

func (f *fakeRegistrar) Insert(method, path string, h handler.Handler) error {
	f.inserts = append(f.inserts, struct {
		method, path string
		h            handler.Handler
	}{method, path, h})
	return nil
}

func TestConcat(t *testing.T) {
	cases := []struct{ a, b, want string }{
		{"", "/x", "/x"},
		{"/a/", "/b", "/a/b"},
		{"/a", "b", "/a/b"},
		{"/a/", "/b/", "/a/b/"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, concat(c.a, c.b))
	}
}

func TestGroup_IntoFlattensPathAndMiddleware(t *testing.T) {
	var order []string
	outer := middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		order = append(order, "outer")
		return next.Call(r)
	})

	g := New().Path("/api").Middleware(outer)
	g.Get("/users", echo("users"))

	reg := &fakeRegistrar{}
	require.NoError(t, g.Into(reg))

	require.Len(t, reg.inserts, 1)
	assert.Equal(t, "GET", reg.inserts[0].method)
	assert.Equal(t, "/api/users", reg.inserts[0].path)

	resp, err := reg.inserts[0].h(request.New(httptest.NewRequest(http.MethodGet, "/api/users", nil), nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "users", string(resp.Body))
	assert.Equal(t, []string{"outer"}, order)
}

func TestGroup_NestedGroupBakesChildMiddlewareBeforeParent(t *testing.T) {
	var order []string
	parentMW := middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		order = append(order, "parent")
		return next.Call(r)
	})
	childMW := middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		order = append(order, "child")
		return next.Call(r)
	})

	child := New().Path("/child").Middleware(childMW)
	child.Get("/leaf", echo("leaf"))

	parent := New().Path("/parent").Middleware(parentMW)
	parent.Group(child)

	reg := &fakeRegistrar{}
	require.NoError(t, parent.Into(reg))

	require.Len(t, reg.inserts, 1)
	assert.Equal(t, "/parent/child/leaf", reg.inserts[0].path)

	_, err := reg.inserts[0].h(request.New(httptest.NewRequest(http.MethodGet, "/parent/child/leaf", nil), nil, nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"parent", "child"}, order)
}

func TestGroup_DuplicateRouteRejectedWithGroupRelativePath(t *testing.T) {
	g := New().Path("/dup")
	g.Get("/x", echo("a"))
	g.Get("/x", echo("b"))

	err := g.Into(&fakeRegistrar{})
	require.Error(t, err)
	assert.True(t, weavererr.Is(err, weavererr.RouteOccupied))
	assert.Contains(t, err.Error(), "/dup/x")
}
