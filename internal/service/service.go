package service

import (
	"context"

	"github.com/binsight/hub/internal/errors"
	"github.com/binsight/hub/internal/repository"
	"github.com/binsight/hub/internal/simulation"
	nuts "github.com/vaudience/go-nuts"
)

const (
	// EventReadingsGenerated carries a GenerationEvent
	EventReadingsGenerated = "readings.generated"
	// EventDeviceUnknown carries the rejected device id
	EventDeviceUnknown = "device.unknown"
)

// Service wires the generator to the optional device registry
type Service struct {
	generator   *simulation.Generator
	devices     repository.DeviceRepository
	events      *nuts.EventEmitter
	maxReadings int
}

// New creates a new service instance. devices may be nil, in which case
// any device id is accepted.
func New(generator *simulation.Generator, devices repository.DeviceRepository, maxReadings int) *Service {
	return &Service{
		generator:   generator,
		devices:     devices,
		events:      nuts.NewEventEmitter(),
		maxReadings: maxReadings,
	}
}

// Validate checks if all required dependencies are initialized
func (s *Service) Validate() error {
	if s.generator == nil {
		return errors.NewInternalError("missing generator", nil)
	}
	if s.maxReadings <= 0 {
		return errors.NewInternalError("max readings must be positive", nil)
	}
	return nil
}

// On registers a handler for a service event
func (s *Service) On(event, handlerID string, handler func(args ...interface{})) {
	s.events.On(event, handlerID, handler)
}

// RegistryEnabled reports whether device ids are checked against a registry
func (s *Service) RegistryEnabled() bool {
	return s.devices != nil
}

// Ping checks the registry connection when one is configured
func (s *Service) Ping(ctx context.Context) error {
	if s.devices == nil {
		return nil
	}
	return s.devices.Ping(ctx)
}
