package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaverhttp/weaver/handler"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

const headerMustBeUnset = "X-Must-Be-Unset"

// first removes headerMustBeUnset before calling downstream, then marks
// the response so a test can tell it actually ran.
var first = MiddlewareFunc(func(r *request.Request, next Next) (*response.Response, error) {
	r.Header.Del(headerMustBeUnset)
	resp, err := next.Call(r)
	if err != nil {
		return resp, err
	}
	resp.Header.Set("X-Was-Set", "true")
	return resp, nil
})

// second rejects with 400 if headerMustBeUnset is still present.
var second = MiddlewareFunc(func(r *request.Request, next Next) (*response.Response, error) {
	if r.Header.Get(headerMustBeUnset) != "" {
		resp := response.New()
		resp.Status = http.StatusBadRequest
		return resp, nil
	}
	return next.Call(r)
})

func echoHandler() handler.Handler {
	return handler.Func0Request(func(r *request.Request) (response.Text, error) {
		return response.Text("echo"), nil
	})
}

func TestChain_FirstOutermostSeesHeaderFirst(t *testing.T) {
	h := Chain(echoHandler(), first, second)

	httpReq := httptest.NewRequest(http.MethodGet, "/combined/echo", nil)
	httpReq.Header.Set(headerMustBeUnset, "1")
	r := request.New(httpReq, nil, nil)

	resp, err := h(r)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "true", resp.Header.Get("X-Was-Set"))
	assert.Equal(t, "echo", string(resp.Body))
}

func TestChain_JustSecondRejectsWhenHeaderPresent(t *testing.T) {
	h := Chain(echoHandler(), second)

	httpReq := httptest.NewRequest(http.MethodGet, "/just_second/echo", nil)
	httpReq.Header.Set(headerMustBeUnset, "1")
	r := request.New(httpReq, nil, nil)

	resp, err := h(r)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
}

func TestFunc1_PassesExtractedValueToUserFunc(t *testing.T) {
	var seenID string
	mw := Func1(request.FromPath, func(p request.Path, next Next) (response.Empty, error) {
		seenID = p["id"]
		return response.Empty{}, nil
	})

	h := Chain(echoHandler(), mw)
	r := request.New(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "1"}, nil)
	resp, err := h(r)
	require.NoError(t, err)
	assert.Equal(t, "1", seenID)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestFunc0_RejectionShortCircuitsBeforeNext(t *testing.T) {
	called := false
	mw := Func0(func(next Next) (response.StatusCode, error) {
		called = true
		return response.StatusCode(http.StatusTooManyRequests), nil
	})

	h := Chain(echoHandler(), mw)
	r := request.New(httptest.NewRequest(http.MethodGet, "/", nil), nil, nil)
	resp, err := h(r)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusTooManyRequests, resp.Status)
	assert.Empty(t, resp.Body)
}
