// Package requestid is a built-in middleware that stamps every request
// with a fresh v4 UUID, available to downstream handlers via the
// request's extensions and echoed back as a response header.
package requestid

import (
	"github.com/google/uuid"

	"github.com/weaverhttp/weaver/ext"
	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

// ID is the type stored in a request's extensions by New's middleware.
type ID string

// HeaderName is the response header New's middleware echoes the
// generated ID back under.
const HeaderName = "X-Request-Id"

// New returns a middleware that generates a v4 UUID, stores it in the
// request's extensions under the ID type, and sets it as a response
// header once the downstream chain returns.
func New() middleware.Middleware {
	return middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		id := ID(uuid.NewString())
		ext.Set(&r.Extensions, id)

		resp, err := next.Call(r)
		if err != nil {
			return resp, err
		}
		resp.Header.Set(HeaderName, string(id))
		return resp, nil
	})
}
