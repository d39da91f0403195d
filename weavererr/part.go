package weavererr

import "github.com/weaverhttp/weaver/response"

// Apply implements response.Part directly on *Error: the router's
// default fallback for an unmatched path or method is simply "apply the
// resulting error", yielding the short text bodies from spec section 4.1
// ("404 Not Found" / "405 Method Not Allowed"). Other kinds fall back to
// a generic 500 carrying the error text, since they are not expected to
// reach a response-building path in ordinary operation.
func (e *Error) Apply(r *response.Response) error {
	switch e.kind {
	case NotFound:
		r.Status = 404
		r.Body = []byte("404 Not Found")
	case MethodNotAllowed:
		r.Status = 405
		r.Body = []byte("405 Method Not Allowed")
	default:
		r.Status = 500
		r.Body = []byte(e.Error())
	}
	return nil
}
