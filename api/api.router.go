package api

import (
	"net/http"
	"os"

	"github.com/binsight/hub/api/middleware"
	"github.com/binsight/hub/api/resources"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	rateLimit      *middleware.RateLimitMiddleware
	resources      *resources.Resources
	allowedOrigins []string
}

// NewRouter builds the route table. rateLimit may be nil.
func NewRouter(res *resources.Resources, rateLimit *middleware.RateLimitMiddleware, allowedOrigins []string) *Router {
	r := &Router{
		router:         mux.NewRouter(),
		rateLimit:      rateLimit,
		resources:      res,
		allowedOrigins: allowedOrigins,
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/v1").Subrouter()

	// System routes
	api.HandleFunc("/health", r.resources.System.Health).Methods(http.MethodGet)
	api.HandleFunc("/metrics", r.resources.System.Metrics).Methods(http.MethodGet)
	api.HandleFunc("/swagger/doc.json", r.resources.System.SwaggerDoc).Methods(http.MethodGet)

	// Devices
	devices := api.PathPrefix("/devices").Subrouter()
	if r.rateLimit != nil {
		devices.Use(r.rateLimit.Limit)
	}
	devices.HandleFunc("/{id}/readings", r.resources.Readings.GetReadings).Methods(http.MethodGet)
}

// Handler wraps the routes with recovery, CORS and access logging
func (r *Router) Handler() http.Handler {
	var h http.Handler = r.router
	h = handlers.CORS(
		handlers.AllowedOrigins(r.allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.ExposedHeaders([]string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}),
	)(h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(h)
	return handlers.CombinedLoggingHandler(os.Stdout, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
