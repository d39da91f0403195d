// Package weaveradmin is an optional, read-only introspection surface
// for a running weaver.Server: its live routing table plus Go's own
// pprof/expvar diagnostics. It is never mounted by the core Server; a
// host wires it in explicitly, keeping the core itself free of any
// admin-API opinions.
package weaveradmin

import (
	"encoding/json"
	"expvar"
	"net/http"
	"net/http/pprof"
	"runtime"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
)

// RouteLister is satisfied by *weaver.Server (Routes() []string);
// kept as a narrow interface here so weaveradmin never needs to import
// the root weaver package.
type RouteLister interface {
	Routes() []string
}

// Handler builds the admin http.Handler for srv: GET /routes lists the
// live routing table, /debug/pprof/* and /debug/vars expose Go's own
// diagnostics endpoints.
func Handler(srv RouteLister) http.Handler {
	r := chi.NewRouter()

	r.Get("/routes", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(srv.Routes())
	})

	r.Get("/stats", func(w http.ResponseWriter, req *http.Request) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"heap_alloc":  humanize.Bytes(m.HeapAlloc),
			"heap_sys":    humanize.Bytes(m.HeapSys),
			"total_alloc": humanize.Bytes(m.TotalAlloc),
		})
	})

	r.Get("/debug/pprof/*", pprof.Index)
	r.Get("/debug/pprof/cmdline", pprof.Cmdline)
	r.Get("/debug/pprof/profile", pprof.Profile)
	r.Get("/debug/pprof/symbol", pprof.Symbol)
	r.Get("/debug/pprof/trace", pprof.Trace)
	r.Handle("/debug/vars", expvar.Handler())

	return r
}
