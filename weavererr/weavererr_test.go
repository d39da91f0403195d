package weavererr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaverhttp/weaver/response"
)

func TestIs_MatchesWrappedKind(t *testing.T) {
	err := New(NotFound, "no route for /x")
	assert.True(t, Is(err, NotFound))
	assert.False(t, Is(err, RouteOccupied))
	assert.False(t, Is(errors.New("plain"), NotFound))
}

func TestWrap_PreservesCauseInErrorString(t *testing.T) {
	cause := errors.New("broken pipe")
	err := Wrap(ConnectionError, "fiber B failed", cause)
	assert.Equal(t, "fiber B failed: broken pipe", err.Error())
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestChain_DedupesRedundantCauseTail(t *testing.T) {
	cause := errors.New("EOF")
	err := Wrap(ServeExited, "connection serve loop exited", cause)
	// Error() already embeds cause.Error(), so Chain must not repeat it.
	assert.Equal(t, "connection serve loop exited: EOF", Chain(err))
}

func TestChain_DedupesEveryEmbeddedLayer(t *testing.T) {
	inner := errors.New("connection reset by peer")
	middle := Wrap(ConnectionError, "read failed", inner)
	outer := Wrap(ServeExited, "serve loop aborted", middle)
	// Each layer's Error() already embeds every lower layer's text, so the
	// whole chain dedupes down to the outermost, fully-qualified message.
	assert.Equal(t, "serve loop aborted: read failed: connection reset by peer", Chain(outer))
}

func TestApply_NotFoundYields404Text(t *testing.T) {
	err := New(NotFound, "no route for /missing")
	r := response.New()
	require.NoError(t, err.Apply(r))
	assert.Equal(t, 404, r.Status)
	assert.Equal(t, "404 Not Found", string(r.Body))
}

func TestApply_MethodNotAllowedYields405Text(t *testing.T) {
	err := New(MethodNotAllowed, "DELETE not allowed on /users")
	r := response.New()
	require.NoError(t, err.Apply(r))
	assert.Equal(t, 405, r.Status)
	assert.Equal(t, "405 Method Not Allowed", string(r.Body))
}
