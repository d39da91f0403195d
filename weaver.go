// Package weaver is an embeddable HTTP/1.1+HTTP/2 server framework: a
// router, an extractor/response-part composition model, layered
// middleware and route groups, wired to run as one or more fibers atop a
// host-supplied (or default goroutine-backed) scheduler.
package weaver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/pires/go-proxyproto"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/weaverhttp/weaver/fiber"
	"github.com/weaverhttp/weaver/group"
	"github.com/weaverhttp/weaver/handler"
	"github.com/weaverhttp/weaver/request"
	"github.com/weaverhttp/weaver/response"
	"github.com/weaverhttp/weaver/router"
	"github.com/weaverhttp/weaver/weaverlog"
	"github.com/weaverhttp/weaver/weavererr"
)

// Route names a (path pattern, method) pair to register a handler
// under. Method defaults to GET when left empty.
type Route struct {
	Path   string
	Method string
}

// ServerConfig is built before Server.New and is immutable thereafter.
type ServerConfig struct {
	Host string
	Port int
	// Name overrides the default "weaver_http_server_<host>_<port>"
	// server/fiber name used in log context.
	Name string
	// TrustProxy wraps every accepted connection in a PROXY protocol
	// reader, for servers that sit behind a load balancer speaking the
	// PROXY protocol (HAProxy, many managed load balancers).
	TrustProxy bool
}

func (c ServerConfig) resolvedName() string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("weaver_http_server_%s_%d", c.Host, c.Port)
}

// Server owns configuration and the router; routes are registered before
// the server is handed to Defer or IntoFiber, after which the router is
// read-only and safe to share across connection fibers without locking.
type Server struct {
	cfg    ServerConfig
	router *router.Router[handler.Handler]
	log    *zap.Logger
}

// New constructs a Server, defaulting Host to 127.0.0.1 and Port to 8000
// when left zero.
func New(cfg ServerConfig) *Server {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	return &Server{
		cfg:    cfg,
		router: router.New[handler.Handler](),
		log:    weaverlog.ForServer(cfg.resolvedName()),
	}
}

// Name returns the server's resolved name (explicit Name, or the
// "weaver_http_server_<host>_<port>" default).
func (s *Server) Name() string { return s.cfg.resolvedName() }

// Route registers a single handler at (route.Path, route.Method).
func (s *Server) Route(route Route, h handler.Handler) error {
	method := route.Method
	if method == "" {
		method = http.MethodGet
	}
	return s.router.Insert(router.Route{Path: route.Path, Method: method}, h)
}

// Insert implements group.Registrar, so a Group can flatten directly
// onto a Server via Group.Into(srv) or the Group convenience method.
func (s *Server) Insert(method, path string, h handler.Handler) error {
	return s.router.Insert(router.Route{Path: path, Method: method}, h)
}

// Group flattens g's routes (with g's middleware chain and base path
// applied) into the server's router.
func (s *Server) Group(g *group.Group) error {
	return g.Into(s)
}

// Routes lists every registered (method, path) pair, for introspection.
func (s *Server) Routes() []string { return s.router.Routes() }

// httpHandler adapts the router/handler/response pipeline to
// net/http.Handler: it reads the full body up front (weaver's wire
// layer buffers bodies rather than streaming them into extractors),
// resolves the route, runs the handler, and writes the resulting
// response.Response onto the ResponseWriter.
func (s *Server) httpHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		h, params, err := s.router.Resolve(r.URL.Path, r.Method)

		var resp *response.Response
		if err != nil {
			resp = response.New()
			var werr *weavererr.Error
			if errors.As(err, &werr) {
				_ = werr.Apply(resp)
			} else {
				resp.Status = http.StatusInternalServerError
				resp.Body = []byte(err.Error())
			}
		} else {
			req := request.New(r, params, body)
			resp, err = h(req)
			if err != nil {
				s.log.Error("handler returned error", zap.Error(err), zap.String("path", r.URL.Path))
				resp = response.New()
				resp.Status = http.StatusInternalServerError
				resp.Body = []byte("internal error")
			}
		}

		for k, vs := range resp.Header {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}
		w.WriteHeader(resp.Status)
		_, _ = w.Write(resp.Body)
	})
}

// run binds the configured listener and serves HTTP/1.1 and cleartext
// HTTP/2 (h2c) on it until ctx is cancelled or the listener fails.
// errgroup supervises the accept-serve goroutine alongside the shutdown
// watcher, mirroring how multiple listener addresses would be
// supervised if the server bound more than one.
func (s *Server) run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port))
	if err != nil {
		return weavererr.Wrap(weavererr.InitFailed, "bind listener", err)
	}
	if s.cfg.TrustProxy {
		ln = &proxyproto.Listener{Listener: ln}
	}

	h2s := &http2.Server{}
	httpServer := &http.Server{Handler: h2c.NewHandler(s.httpHandler(), h2s)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if serveErr := httpServer.Serve(ln); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			return weavererr.Wrap(weavererr.ServeExited, "http serve loop exited", serveErr)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return httpServer.Shutdown(context.Background())
	})
	return g.Wait()
}

// Defer spawns the server's accept loop on sched and returns
// immediately ("spawn-and-forget"), logging a terminal error if the
// serve loop ever exits.
func (s *Server) Defer(sched fiber.Scheduler) {
	sched.Spawn(s.Name(), func() {
		if err := s.run(context.Background()); err != nil {
			s.log.Error("server fiber exited", zap.Error(err))
		}
	})
}

// Fiber is the handle returned by IntoFiber: a caller-configurable
// builder that can be started on a scheduler and joined for its final
// error.
type Fiber struct {
	srv  *Server
	ctx  context.Context
	done chan error
}

// IntoFiber returns a Fiber builder bound to ctx (context.Background()
// if ctx is nil), which the caller starts explicitly via Start.
func (s *Server) IntoFiber(ctx context.Context) *Fiber {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Fiber{srv: s, ctx: ctx, done: make(chan error, 1)}
}

// Start spawns the fiber's accept loop on sched.
func (f *Fiber) Start(sched fiber.Scheduler) {
	sched.Spawn(f.srv.Name(), func() {
		f.done <- f.srv.run(f.ctx)
	})
}

// Join blocks until the fiber's accept loop exits, returning its error
// (nil on clean shutdown via ctx cancellation).
func (f *Fiber) Join() error {
	return <-f.done
}
