// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/binsight/hub/api"
	"github.com/binsight/hub/api/middleware"
	"github.com/binsight/hub/api/resources"
	_ "github.com/binsight/hub/docs"
	"github.com/binsight/hub/internal/config"
	"github.com/binsight/hub/internal/database"
	"github.com/binsight/hub/internal/monitoring"
	"github.com/binsight/hub/internal/ratelimit"
	"github.com/binsight/hub/internal/repository"
	"github.com/binsight/hub/internal/repository/postgres"
	"github.com/binsight/hub/internal/service"
	"github.com/binsight/hub/internal/simulation"
	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	service    *service.Service
	monitoring *monitoring.Service
	devices    repository.DeviceRepository
	redis      *redis.Client
}

// New creates a server and connects the optional registry and rate limiter
func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		config: cfg,
		monitoring: monitoring.NewService(monitoring.Config{
			Namespace: cfg.Monitoring.Namespace,
		}),
	}

	if cfg.Database.Registry.Enabled() {
		db, err := database.NewPostgresDB(cfg.Database.Registry)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize device registry: %w", err)
		}
		s.devices = postgres.NewDeviceRepository(db)
	} else {
		nuts.L.Warnf("[Server] No registry database configured, accepting any device id")
	}

	generator := simulation.New(simulation.WithImageBaseURL(cfg.Simulation.ImageBaseURL))
	s.service = service.New(generator, s.devices, cfg.Simulation.MaxReadings)
	if err := s.service.Validate(); err != nil {
		s.close()
		return nil, err
	}

	var rateLimit *middleware.RateLimitMiddleware
	if cfg.RateLimit.Enabled {
		client, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			s.close()
			return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
		}
		s.redis = client
		limiter := ratelimit.NewFixedWindow(ratelimit.NewRedisCounter(client), cfg.RateLimit.Requests, cfg.RateLimit.Window)
		rateLimit = middleware.NewRateLimitMiddleware(limiter, func(client string) {
			s.monitoring.RecordEvent("ratelimit.rejected", map[string]string{"client": client})
		})
	}

	s.setupEventHandlers()

	res := resources.NewResources(s.service, resources.Options{
		Observer:     s.monitoring,
		Metrics:      s.monitoring.Handler(),
		DefaultRange: simulation.Range(cfg.Simulation.DefaultRange),
	})
	router := api.NewRouter(res, rateLimit, cfg.Server.AllowedOrigins)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start begins listening for requests and blocks until shutdown
func (s *Server) Start() error {
	errc := make(chan error, 1)
	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	return s.waitForShutdown(errc)
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown(errc <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errc:
		s.close()
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
	}

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	s.close()

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) setupEventHandlers() {
	s.service.On(service.EventReadingsGenerated, "monitoring", func(args ...interface{}) {
		if len(args) == 0 {
			return
		}
		if ev, ok := args[0].(service.GenerationEvent); ok {
			s.monitoring.ObserveGeneration(ev.Range.String(), ev.Count, ev.Took)
		}
	})

	s.service.On(service.EventDeviceUnknown, "monitoring", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(string); ok {
				s.monitoring.RecordEvent(service.EventDeviceUnknown, map[string]string{"device_id": id})
			}
		}
	})
}

func (s *Server) close() {
	if s.devices != nil {
		if err := s.devices.Close(); err != nil {
			nuts.L.Errorf("[Server] Failed to close registry: %v", err)
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			nuts.L.Errorf("[Server] Failed to close redis: %v", err)
		}
	}
}
