package request

import (
	"encoding/json"

	"github.com/weaverhttp/weaver/response"
)

// Json deserializes the request body as T. It does not take ownership of
// the whole request (it only reads Body), so it may appear anywhere in a
// handler's argument list, including before a terminal extractor.
type Json[T any] struct{ Value T }

// FromJson extracts and deserializes the request body. A decode failure
// rejects with a 500-class response carrying the deserializer's message
// as plain text, per the "internal error" contract for malformed bodies.
func FromJson[T any](r *Request) (Json[T], response.Part) {
	var v T
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return Json[T]{}, response.Tuple2[response.StatusCode, response.Text]{
			A: response.StatusCode(500),
			B: response.Text("json decode error: " + err.Error()),
		}
	}
	return Json[T]{Value: v}, nil
}
