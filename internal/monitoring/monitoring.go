package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	nuts "github.com/vaudience/go-nuts"
)

// Config holds monitoring configuration
type Config struct {
	Namespace string
}

// Service provides monitoring functionality
type Service struct {
	config   Config
	registry *prometheus.Registry

	events             *prometheus.CounterVec
	readingsGenerated  *prometheus.CounterVec
	readingRequests    *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
}

// NewService creates a monitoring service with its own registry
func NewService(config Config) *Service {
	if config.Namespace == "" {
		config.Namespace = "binsight"
	}
	s := &Service{
		config:   config,
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "events_total",
			Help:      "In-process events by name.",
		}, []string{"event"}),
		readingsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "readings_generated_total",
			Help:      "Simulated readings produced, by range.",
		}, []string{"range"}),
		readingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "readings_requests_total",
			Help:      "Readings requests by range and response status.",
		}, []string{"range", "status"}),
		generationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "readings_generation_seconds",
			Help:      "Time spent generating one readings response.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"range"}),
	}

	s.registry.MustRegister(
		s.events,
		s.readingsGenerated,
		s.readingRequests,
		s.generationDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return s
}

// RecordEvent records a monitored event with labels
func (s *Service) RecordEvent(eventName string, labels map[string]string) {
	s.events.WithLabelValues(eventName).Inc()
	nuts.L.Infof("[Monitoring] Event %s recorded with labels: %v", eventName, labels)
}

// ObserveGeneration records one generated series
func (s *Service) ObserveGeneration(rng string, count int, took time.Duration) {
	s.readingsGenerated.WithLabelValues(rng).Add(float64(count))
	s.generationDuration.WithLabelValues(rng).Observe(took.Seconds())
}

// ObserveRequest counts a readings request by its response status
func (s *Service) ObserveRequest(rng string, status int) {
	s.readingRequests.WithLabelValues(rng, http.StatusText(status)).Inc()
}

// Registry exposes the underlying registry, mainly for tests
func (s *Service) Registry() *prometheus.Registry {
	return s.registry
}

// Handler serves the registry in the Prometheus exposition format
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}
