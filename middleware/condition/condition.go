// Package condition is a built-in middleware that guards the downstream
// chain on a CEL boolean expression evaluated against request
// attributes, grounded directly on how the teacher's own expression
// matcher compiles and evaluates a CEL program once at setup and
// re-evaluates it per request.
package condition

import (
	"fmt"
	"net/http"

	"github.com/google/cel-go/cel"

	"github.com/weaverhttp/weaver/middleware"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
)

// New compiles expr once and returns a middleware that evaluates it per
// request against three variables: method (string), path (string), and
// header (map[string]string, first value per header name). If expr
// evaluates false, the request is rejected with reject instead of
// reaching the downstream chain. New panics if expr fails to compile or
// does not type-check to a bool — this is a registration-time
// programmer error, not a request-time condition.
func New(expr string, reject response.Part) middleware.Middleware {
	env, err := cel.NewEnv(
		cel.Variable("method", cel.StringType),
		cel.Variable("path", cel.StringType),
		cel.Variable("header", cel.MapType(cel.StringType, cel.StringType)),
	)
	if err != nil {
		panic(fmt.Sprintf("middleware/condition: building CEL environment: %v", err))
	}

	checked, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		panic(fmt.Sprintf("middleware/condition: compiling expression %q: %v", expr, issues.Err()))
	}
	if checked.OutputType() != cel.BoolType {
		panic(fmt.Sprintf("middleware/condition: expression %q must return bool, got %s", expr, checked.OutputType()))
	}

	prg, err := env.Program(checked, cel.EvalOptions(cel.OptOptimize))
	if err != nil {
		panic(fmt.Sprintf("middleware/condition: building CEL program: %v", err))
	}

	return middleware.MiddlewareFunc(func(r *request.Request, next middleware.Next) (*response.Response, error) {
		out, _, evalErr := prg.Eval(map[string]any{
			"method": r.HTTP.Method,
			"path":   r.HTTP.URL.Path,
			"header": firstValues(r.HTTP.Header),
		})
		if evalErr != nil {
			resp := response.New()
			resp.Status = http.StatusInternalServerError
			resp.Body = []byte("condition evaluation error: " + evalErr.Error())
			return resp, nil
		}

		if matched, ok := out.Value().(bool); ok && matched {
			return next.Call(r)
		}

		resp := response.New()
		if applyErr := reject.Apply(resp); applyErr != nil {
			return resp, applyErr
		}
		return resp, nil
	})
}

func firstValues(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
