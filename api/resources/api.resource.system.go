// FilePath: api/resources/api.resource.system.go
package resources

import (
	"context"
	"net/http"
	"time"

	"github.com/swaggo/swag"
	nuts "github.com/vaudience/go-nuts"
)

const healthTimeout = 2 * time.Second

// Pinger is implemented by anything the health check should probe
type Pinger interface {
	Ping(ctx context.Context) error
	RegistryEnabled() bool
}

// SystemHandlers serves health, metrics and API documentation
type SystemHandlers struct {
	pinger  Pinger
	metrics http.Handler
}

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Registry string `json:"registry"`
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func (h *SystemHandlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Version: nuts.GetVersion(), Registry: "disabled"}
	code := http.StatusOK

	if h.pinger != nil && h.pinger.RegistryEnabled() {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		resp.Registry = "ok"
		if err := h.pinger.Ping(ctx); err != nil {
			nuts.L.Warnf("[Health] Registry ping failed: %v", err)
			resp.Status = "degraded"
			resp.Registry = "unavailable"
			code = http.StatusServiceUnavailable
		}
	}

	respondWithJSON(w, code, resp)
}

// Metrics serves the Prometheus registry
func (h *SystemHandlers) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.metrics == nil {
		http.NotFound(w, r)
		return
	}
	h.metrics.ServeHTTP(w, r)
}

// SwaggerDoc serves the registered OpenAPI document
func (h *SystemHandlers) SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, "documentation not available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
