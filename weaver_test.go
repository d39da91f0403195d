package weaver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaverhttp/weaver/group"
	"github.com/weaverhttp/weaver/handler"
	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

func newTestServer() *Server {
	return New(ServerConfig{Host: "127.0.0.1", Port: 0})
}

func TestScenario1_Echo(t *testing.T) {
	srv := newTestServer()
	require.NoError(t, srv.Route(Route{Path: "/echo", Method: http.MethodPost}, handler.Func0Request(
		func(r *request.Request) (response.Bytes, error) {
			return response.Bytes(r.Body), nil
		},
	)))

	ts := httptest.NewServer(srv.httpHandler())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/echo", "text/plain", strings.NewReader("hello"))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(body))
}

func TestScenario2_PathParams(t *testing.T) {
	srv := newTestServer()
	require.NoError(t, srv.Route(Route{Path: "/path/{id}/content/{a}/{b}", Method: http.MethodGet}, handler.Func1(
		request.FromPath,
		func(p request.Path) (response.Json[request.Path], error) {
			return response.Json[request.Path]{Value: p}, nil
		},
	)))

	ts := httptest.NewServer(srv.httpHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/path/42/content/x/y")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]string
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, map[string]string{"id": "42", "a": "x", "b": "y"}, got)
}

func TestScenario3_MethodRouting(t *testing.T) {
	srv := newTestServer()
	type methodResp struct {
		Method   string `json:"method"`
		Endpoint string `json:"endpoint"`
	}
	require.NoError(t, srv.Route(Route{Path: "/methods", Method: http.MethodGet}, handler.Func0(
		func() (response.Text, error) { return response.Text("get"), nil },
	)))
	require.NoError(t, srv.Route(Route{Path: "/methods", Method: http.MethodPost}, handler.Func0(
		func() (response.Text, error) { return response.Text("post"), nil },
	)))
	require.NoError(t, srv.Route(Route{Path: "/methods", Method: "VOROJBA"}, handler.Func0(
		func() (response.Json[methodResp], error) {
			return response.Json[methodResp]{Value: methodResp{Method: "VOROJBA", Endpoint: "extension_first_endpoint"}}, nil
		},
	)))

	ts := httptest.NewServer(srv.httpHandler())
	defer ts.Close()

	req, err := http.NewRequest("VOROJBA", ts.URL+"/methods", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"method":"VOROJBA","endpoint":"extension_first_endpoint"}`, string(body))

	req2, err := http.NewRequest(http.MethodDelete, ts.URL+"/methods", nil)
	require.NoError(t, err)
	resp2, err := http.DefaultClient.Do(req2)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}

func TestScenario4_UnknownPath(t *testing.T) {
	srv := newTestServer()
	ts := httptest.NewServer(srv.httpHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "404 Not Found", string(body))
}

func TestScenario5_CompositeResponseParts(t *testing.T) {
	srv := newTestServer()
	type payload struct {
		Value string `json:"value"`
	}

	composite := response.Tuple6[
		response.StatusCode,
		response.HeaderMap,
		response.Json[payload],
		response.Extend[response.HeaderMap],
		response.Header,
		response.Headers,
	]{
		A: response.StatusCode(http.StatusCreated),
		B: response.HeaderMap{"X-Header-1": {"header-1"}, "X-Header-2": {"header-2"}},
		C: response.Json[payload]{Value: payload{Value: "v"}},
		D: response.Extend[response.HeaderMap]{Value: response.HeaderMap{
			"X-Header-1": {"header-1-2"},
			"X-Header-3": {"header-3"},
			"X-Header-4": {"header-4"},
		}},
		E: response.Header{Key: "X-Header-5", Value: "header-5"},
		F: response.Headers{
			{Key: "X-Header-6", Value: "header-6"},
			{Key: "X-Header-4", Value: "header-4-1"},
		},
	}

	require.NoError(t, srv.Route(Route{Path: "/composite", Method: http.MethodGet}, handler.Func0(
		func() (response.Tuple6[
			response.StatusCode,
			response.HeaderMap,
			response.Json[payload],
			response.Extend[response.HeaderMap],
			response.Header,
			response.Headers,
		], error) {
			return composite, nil
		},
	)))

	ts := httptest.NewServer(srv.httpHandler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/composite")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "header-1-2", resp.Header.Get("X-Header-1"))
	assert.Equal(t, "header-2", resp.Header.Get("X-Header-2"))
	assert.Equal(t, "header-3", resp.Header.Get("X-Header-3"))
	assert.Equal(t, "header-4-1", resp.Header.Get("X-Header-4"))
	assert.Equal(t, "header-5", resp.Header.Get("X-Header-5"))
	assert.Equal(t, "header-6", resp.Header.Get("X-Header-6"))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"value":"v"}`, string(body))
}

func TestScenario6_MiddlewareOrdering(t *testing.T) {
	const headerMustBeUnset = "X-Must-Be-Unset"

	first := middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		r.Header.Del(headerMustBeUnset)
		resp, err := next.Call(r)
		if err != nil {
			return resp, err
		}
		resp.Header.Set("X-Was-Set", "true")
		return resp, nil
	})
	second := middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		if r.Header.Get(headerMustBeUnset) != "" {
			resp := response.New()
			resp.Status = http.StatusBadRequest
			return resp, nil
		}
		return next.Call(r)
	})
	echo := handler.Func0Request(func(r *request.Request) (response.Text, error) {
		return response.Text("echo"), nil
	})

	srv := newTestServer()
	combined := group.New().Path("/combined").Middleware(first).Middleware(second)
	combined.Get("/echo", echo)
	require.NoError(t, srv.Group(combined))

	justSecond := group.New().Path("/just_second").Middleware(second)
	justSecond.Get("/echo", echo)
	require.NoError(t, srv.Group(justSecond))

	ts := httptest.NewServer(srv.httpHandler())
	defer ts.Close()

	req1, _ := http.NewRequest(http.MethodGet, ts.URL+"/combined/echo", nil)
	req1.Header.Set(headerMustBeUnset, "1")
	resp1, err := http.DefaultClient.Do(req1)
	require.NoError(t, err)
	defer resp1.Body.Close()
	assert.Equal(t, http.StatusOK, resp1.StatusCode)
	assert.Equal(t, "true", resp1.Header.Get("X-Was-Set"))

	req2, _ := http.NewRequest(http.MethodGet, ts.URL+"/just_second/echo", nil)
	req2.Header.Set(headerMustBeUnset, "1")
	resp2, err := http.DefaultClient.Do(req2)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)
}

func TestServer_NameDefaultsToBindAddress(t *testing.T) {
	srv := New(ServerConfig{Host: "0.0.0.0", Port: 9000})
	assert.Equal(t, "weaver_http_server_0.0.0.0_9000", srv.Name())
}

func TestServer_DuplicateRouteRejected(t *testing.T) {
	srv := newTestServer()
	h := handler.Func0(func() (response.Empty, error) { return response.Empty{}, nil })
	require.NoError(t, srv.Route(Route{Path: "/x", Method: http.MethodGet}, h))
	err := srv.Route(Route{Path: "/x", Method: http.MethodGet}, h)
	require.Error(t, err)
}
