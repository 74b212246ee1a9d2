package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/binsight/hub/internal/errors"
	"github.com/binsight/hub/internal/models"
	"github.com/binsight/hub/internal/simulation"
	nuts "github.com/vaudience/go-nuts"
)

// ReadingsRequest selects the series to generate
type ReadingsRequest struct {
	DeviceID string
	Range    simulation.Range
	Start    time.Time
	End      time.Time
}

// GenerationEvent is emitted after every generated series
type GenerationEvent struct {
	DeviceID string
	Range    simulation.Range
	Count    int
	Took     time.Duration
}

// GenerateReadings produces the simulated series for req. An inverted
// window yields an empty slice.
func (s *Service) GenerateReadings(ctx context.Context, req ReadingsRequest) ([]models.Reading, error) {
	if strings.TrimSpace(req.DeviceID) == "" {
		return nil, errors.NewValidationError("device id is required", nil)
	}

	expected := simulation.Count(req.Start, req.End, req.Range)
	if expected > s.maxReadings {
		return nil, errors.NewValidationError(
			fmt.Sprintf("window would produce %d readings, limit is %d", expected, s.maxReadings),
			nil,
		).WithDetails(map[string]any{
			"range":        req.Range.String(),
			"expected":     expected,
			"max_readings": s.maxReadings,
		})
	}

	if s.devices != nil {
		if err := s.checkDevice(ctx, req.DeviceID); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.NewUnavailableError("request cancelled", err)
	}

	started := time.Now()
	readings := s.generator.Collect(req.DeviceID, req.Start, req.End, req.Range)
	took := time.Since(started)

	nuts.L.Infof("[ReadingsService] Generated %d readings for device %s (range %s) in %v",
		len(readings), req.DeviceID, req.Range, took)
	s.events.Emit(EventReadingsGenerated, GenerationEvent{
		DeviceID: req.DeviceID,
		Range:    req.Range,
		Count:    len(readings),
		Took:     took,
	})
	return readings, nil
}

// checkDevice accepts registered devices that are not decommissioned.
// Offline devices still get readings.
func (s *Service) checkDevice(ctx context.Context, deviceID string) error {
	device, err := s.devices.Get(ctx, deviceID)
	if err != nil {
		if errors.IsNotFound(err) {
			s.events.Emit(EventDeviceUnknown, deviceID)
		}
		return err
	}
	if device.Status == models.DeviceInactive {
		s.events.Emit(EventDeviceUnknown, deviceID)
		return errors.NewNotFoundError("device is inactive", nil).
			WithDetails(map[string]string{"device_id": deviceID, "status": string(device.Status)})
	}
	return nil
}
