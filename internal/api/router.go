// Package api exposes document and form validation over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/brkit/internal/metrics"
	"github.com/dmitrymomot/brkit/pkg/binder"
	"github.com/dmitrymomot/brkit/pkg/clientip"
	"github.com/dmitrymomot/brkit/pkg/environment"
	"github.com/dmitrymomot/brkit/pkg/i18n"
	"github.com/dmitrymomot/brkit/pkg/logger"
	"github.com/dmitrymomot/brkit/pkg/ratelimiter"
	"github.com/dmitrymomot/brkit/pkg/requestid"
)

// maxBodyBytes limits POST bodies.
const maxBodyBytes = 64 << 10

// Options configures the router.
type Options struct {
	Translator  *i18n.Translator
	Logger      *slog.Logger
	Environment environment.Environment
	// RateLimiter throttles /v1 per client IP. Nil disables throttling.
	RateLimiter *ratelimiter.Limiter
	ClientIP    clientip.Resolver
	// Metrics records counters and serves GET /metrics. Nil disables both.
	Metrics *metrics.Metrics
}

type server struct {
	tr       *i18n.Translator
	log      *slog.Logger
	limiter  *ratelimiter.Limiter
	clientIP clientip.Resolver
	metrics  *metrics.Metrics
	bindJSON func(r *http.Request, v any) error
}

// NewRouter builds the HTTP handler. Translator is required.
func NewRouter(opts Options) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	env := opts.Environment
	if env == "" {
		env = environment.Development
	}
	s := &server{
		tr:       opts.Translator,
		log:      log.With(logger.Component("api")),
		limiter:  opts.RateLimiter,
		clientIP: opts.ClientIP,
		metrics:  opts.Metrics,
		bindJSON: binder.JSON(binder.WithMaxSize(maxBodyBytes)),
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		environment.Middleware(env),
		middleware.Recoverer,
		s.accessLog,
		i18n.Middleware(s.tr),
	)

	r.NotFound(s.notFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorDetail{Code: "method_not_allowed"})
	})

	r.Get("/health", health)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.rateLimit)
		}
		r.Get("/documents/{kind}/*", s.getDocument)
		r.Post("/validate", s.validate)
	})

	return r
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (s *server) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, ErrorDetail{
		Code:    CodeNotFound,
		Message: s.tr.T(i18n.Locale(r.Context()), "error.not_found"),
	})
}

// accessLog records method, route pattern, status and latency, to the log
// and to the request histogram. The pattern
// is logged instead of the path so raw identifiers never reach the logs.
func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		s.metrics.Request(route, r.Method, ww.Status(), elapsed)
		s.log.InfoContext(r.Context(), "HTTP request",
			slog.String("method", r.Method),
			slog.String("route", route),
			slog.Int("status", ww.Status()),
			logger.Duration(elapsed),
		)
	})
}
