package web

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sloppy/catchmap/internal/observability"
	"github.com/sloppy/catchmap/internal/tooltip"
)

const defaultMaxBodyBytes = 1 << 20

// Options carries the optional dependencies of a Server.
type Options struct {
	Metrics      *observability.TooltipCollector
	Logger       *log.Logger
	MaxBodyBytes int64
}

// Server wires the web handlers and dependencies.
type Server struct {
	Tooltips     *tooltip.Registry
	Metrics      *observability.TooltipCollector
	MaxBodyBytes int64
	Router       chi.Router
}

// NewServer constructs the router and registers routes. The registry is
// injected so the map front end only sees the renderers the host bound.
func NewServer(tooltips *tooltip.Registry, opts Options) *Server {
	server := &Server{
		Tooltips:     tooltips,
		Metrics:      opts.Metrics,
		MaxBodyBytes: opts.MaxBodyBytes,
	}
	if server.MaxBodyBytes <= 0 {
		server.MaxBodyBytes = defaultMaxBodyBytes
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: opts.Logger, NoColor: true}))
	}
	r.Use(middleware.Recoverer)

	r.Get("/", server.handleRoot)
	r.Get("/healthz", server.handleHealth)
	r.Get("/tooltips", server.handleTooltipNames)
	r.Post("/tooltips/{name}", server.handleTooltip)
	r.Post("/tooltips/{name}/batch", server.handleTooltipBatch)
	if server.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(server.Metrics.Gatherer(), promhttp.HandlerOpts{}))
	}

	server.Router = r
	return server
}

// Handler exposes the configured router.
func (s *Server) Handler() http.Handler {
	return s.Router
}
