package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMap_ReplacesThenExtendMerges(t *testing.T) {
	r := New()
	first := HeaderMap{"X": []string{"1"}, "Y": []string{"2"}}
	second := Extend[HeaderMap]{Value: HeaderMap{"X": []string{"2"}, "Z": []string{"3"}}}

	require.NoError(t, first.Apply(r))
	require.NoError(t, second.Apply(r))

	assert.Equal(t, "2", r.Header.Get("X"))
	assert.Equal(t, "2", r.Header.Get("Y"))
	assert.Equal(t, "3", r.Header.Get("Z"))
}

type stringValue struct{ v string }

func (s stringValue) Apply(r *Response) error { r.Body = append(r.Body, []byte(s.v)...); return nil }

func TestTuple2_AppliesLeftToRight(t *testing.T) {
	tup := Tuple2[stringValue, stringValue]{A: stringValue{"a"}, B: stringValue{"b"}}
	r := New()
	require.NoError(t, tup.Apply(r))
	assert.Equal(t, "ab", string(r.Body))
}

func TestCompositeResponseScenario(t *testing.T) {
	// spec §8 scenario 5
	type payload struct {
		Name string `json:"name"`
	}

	composite := Tuple6[
		StatusCode,
		HeaderMap,
		Json[payload],
		Extend[HeaderMap],
		Header,
		Headers,
	]{
		A: StatusCode(http.StatusCreated),
		B: HeaderMap{"X-Header-1": {"header-1"}, "X-Header-2": {"header-2"}},
		C: Json[payload]{Value: payload{Name: "hi"}},
		D: Extend[HeaderMap]{Value: HeaderMap{
			"X-Header-1": {"header-1-2"},
			"X-Header-3": {"header-3"},
			"X-Header-4": {"header-4"},
		}},
		E: Header{Key: "X-Header-5", Value: "header-5"},
		F: Headers{
			{Key: "X-Header-6", Value: "header-6"},
			{Key: "X-Header-4", Value: "header-4-1"},
		},
	}

	r := New()
	require.NoError(t, composite.Apply(r))

	assert.Equal(t, http.StatusCreated, r.Status)
	assert.Equal(t, "header-1-2", r.Header.Get("X-Header-1"))
	assert.Equal(t, "header-2", r.Header.Get("X-Header-2"))
	assert.Equal(t, "header-3", r.Header.Get("X-Header-3"))
	assert.Equal(t, "header-4-1", r.Header.Get("X-Header-4"))
	assert.Equal(t, "header-5", r.Header.Get("X-Header-5"))
	assert.Equal(t, "header-6", r.Header.Get("X-Header-6"))
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"hi"}`, string(r.Body))
}

func TestResult_AppliesErrBranchWhenSet(t *testing.T) {
	res := Result[Text]{Value: Text("ok"), Err: StatusCode(500)}
	r := New()
	require.NoError(t, res.Apply(r))
	assert.Equal(t, 500, r.Status)
	assert.Empty(t, r.Body)
}

func TestResult_AppliesValueWhenNoErr(t *testing.T) {
	res := Result[Text]{Value: Text("ok")}
	r := New()
	require.NoError(t, res.Apply(r))
	assert.Equal(t, "ok", string(r.Body))
}
