package resources

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubPinger struct {
	enabled bool
	err     error
}

func (p stubPinger) Ping(context.Context) error { return p.err }
func (p stubPinger) RegistryEnabled() bool      { return p.enabled }

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		pinger   Pinger
		code     int
		status   string
		registry string
	}{
		{"no pinger", nil, http.StatusOK, "ok", "disabled"},
		{"registry disabled", stubPinger{}, http.StatusOK, "ok", "disabled"},
		{"registry up", stubPinger{enabled: true}, http.StatusOK, "ok", "ok"},
		{"registry down", stubPinger{enabled: true, err: stderrors.New("connection refused")},
			http.StatusServiceUnavailable, "degraded", "unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &SystemHandlers{pinger: tt.pinger}
			rr := httptest.NewRecorder()
			h.Health(rr, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

			if rr.Code != tt.code {
				t.Fatalf("status %d, want %d", rr.Code, tt.code)
			}
			var body healthResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != tt.status || body.Registry != tt.registry {
				t.Fatalf("got %+v, want status %q registry %q", body, tt.status, tt.registry)
			}
		})
	}
}

func TestMetricsWithoutHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	(&SystemHandlers{}).Metrics(rr, httptest.NewRequest(http.MethodGet, "/v1/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rr.Code)
	}
}
