package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/binsight/hub/internal/errors"
	"github.com/binsight/hub/internal/models"
	"github.com/binsight/hub/internal/simulation"
)

type stubDevices struct {
	status map[string]models.DeviceStatus
	err    error
	calls  int
}

func (s *stubDevices) Get(_ context.Context, id string) (*models.Device, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	status, ok := s.status[id]
	if !ok {
		return nil, errors.NewNotFoundError("device not found", nil)
	}
	return &models.Device{ID: id, Status: status}, nil
}

func (s *stubDevices) Ping(context.Context) error { return s.err }
func (s *stubDevices) Close() error               { return nil }

var start = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestService(devices *stubDevices, maxReadings int) *Service {
	gen := simulation.New(simulation.WithSource(simulation.NewSeededSource(7)))
	if devices == nil {
		return New(gen, nil, maxReadings)
	}
	return New(gen, devices, maxReadings)
}

func TestGenerateReadingsWithoutRegistry(t *testing.T) {
	svc := newTestService(nil, 100)
	if err := svc.Validate(); err != nil {
		t.Fatal(err)
	}

	readings, err := svc.GenerateReadings(context.Background(), ReadingsRequest{
		DeviceID: "any-bin",
		Range:    simulation.Range1h,
		Start:    start,
		End:      start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(readings) != 13 {
		t.Fatalf("got %d readings, want 13", len(readings))
	}
	if svc.RegistryEnabled() {
		t.Fatal("registry should be disabled")
	}
}

func TestGenerateReadingsInvertedWindow(t *testing.T) {
	svc := newTestService(nil, 100)
	readings, err := svc.GenerateReadings(context.Background(), ReadingsRequest{
		DeviceID: "bin-1",
		Range:    simulation.Range24h,
		Start:    start.Add(time.Hour),
		End:      start,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if readings == nil || len(readings) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", readings)
	}
}

func TestGenerateReadingsRejectsOversizedWindow(t *testing.T) {
	svc := newTestService(nil, 12)
	_, err := svc.GenerateReadings(context.Background(), ReadingsRequest{
		DeviceID: "bin-1",
		Range:    simulation.Range1h,
		Start:    start,
		End:      start.Add(time.Hour),
	})
	if !errors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateReadingsRequiresDeviceID(t *testing.T) {
	svc := newTestService(nil, 100)
	_, err := svc.GenerateReadings(context.Background(), ReadingsRequest{Range: simulation.Range1h, Start: start, End: start})
	if !errors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateReadingsChecksRegistry(t *testing.T) {
	devices := &stubDevices{status: map[string]models.DeviceStatus{"bin-1": models.DeviceActive}}
	svc := newTestService(devices, 100)

	if _, err := svc.GenerateReadings(context.Background(), ReadingsRequest{
		DeviceID: "bin-1", Range: simulation.Range1h, Start: start, End: start.Add(time.Hour),
	}); err != nil {
		t.Fatalf("known device: %v", err)
	}

	_, err := svc.GenerateReadings(context.Background(), ReadingsRequest{
		DeviceID: "bin-404", Range: simulation.Range1h, Start: start, End: start.Add(time.Hour),
	})
	if !errors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if devices.calls != 2 {
		t.Fatalf("expected 2 registry lookups, got %d", devices.calls)
	}
}

func TestGenerateReadingsRegistryStatus(t *testing.T) {
	devices := &stubDevices{status: map[string]models.DeviceStatus{
		"bin-active":  models.DeviceActive,
		"bin-offline": models.DeviceOffline,
		"bin-retired": models.DeviceInactive,
	}}
	svc := newTestService(devices, 100)

	tests := []struct {
		id       string
		notFound bool
	}{
		{"bin-active", false},
		{"bin-offline", false},
		{"bin-retired", true},
		{"bin-unknown", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			_, err := svc.GenerateReadings(context.Background(), ReadingsRequest{
				DeviceID: tt.id, Range: simulation.Range1h, Start: start, End: start.Add(time.Hour),
			})
			if tt.notFound && !errors.IsNotFound(err) {
				t.Fatalf("expected not found, got %v", err)
			}
			if !tt.notFound && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestGenerateReadingsPropagatesRegistryErrors(t *testing.T) {
	dbErr := errors.NewDatabaseError("failed to check device", stderrors.New("timeout"))
	svc := newTestService(&stubDevices{err: dbErr}, 100)

	_, err := svc.GenerateReadings(context.Background(), ReadingsRequest{
		DeviceID: "bin-1", Range: simulation.Range1h, Start: start, End: start,
	})
	if !stderrors.Is(err, dbErr) {
		t.Fatalf("expected registry error, got %v", err)
	}
	if svc.Ping(context.Background()) == nil {
		t.Fatal("expected ping to surface the registry error")
	}
}

func TestGenerateReadingsHonoursCancellation(t *testing.T) {
	svc := newTestService(nil, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GenerateReadings(ctx, ReadingsRequest{
		DeviceID: "bin-1", Range: simulation.Range1h, Start: start, End: start,
	})
	apiErr, ok := errors.As(err)
	if !ok || apiErr.Type != errors.ErrorTypeUnavailable {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestValidateRejectsMissingGenerator(t *testing.T) {
	if err := New(nil, nil, 10).Validate(); err == nil {
		t.Fatal("expected validation failure")
	}
}
