// FilePath: api/resources/api.resource.readings.go
package resources

import (
	"fmt"
	"net/http"
	"reflect"
	"time"

	"github.com/binsight/hub/internal/errors"
	"github.com/binsight/hub/internal/service"
	"github.com/binsight/hub/internal/simulation"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

// RequestObserver receives the outcome of every readings request
type RequestObserver interface {
	ObserveRequest(rng string, status int)
}

// ReadingHandlers serves simulated device readings
type ReadingHandlers struct {
	service      *service.Service
	observer     RequestObserver
	decoder      *schema.Decoder
	defaultRange simulation.Range
	now          func() time.Time
}

// ReadingsQuery holds the query parameters of the readings endpoint
type ReadingsQuery struct {
	Range string    `schema:"range"`
	Start time.Time `schema:"start"`
	End   time.Time `schema:"end"`
}

func NewReadingHandlers(svc *service.Service, observer RequestObserver, defaultRange simulation.Range) *ReadingHandlers {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	decoder.RegisterConverter(time.Time{}, func(s string) reflect.Value {
		if s == "" {
			return reflect.ValueOf(time.Time{})
		}
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(t)
	})

	if !defaultRange.Valid() {
		defaultRange = simulation.Range24h
	}
	return &ReadingHandlers{
		service:      svc,
		observer:     observer,
		decoder:      decoder,
		defaultRange: defaultRange,
		now:          time.Now,
	}
}

// @Summary Get simulated device readings
// @Description Generate a simulated series of bin sensor readings for a device
// @Tags devices
// @Produce json
// @Param id path string true "Device ID"
// @Param range query string false "Resolution (1h, 24h, 7d, 30d)" default(24h)
// @Param start query string false "Start time (RFC3339)"
// @Param end query string false "End time (RFC3339)"
// @Success 200 {array} models.Reading
// @Failure 400 {object} errors.APIError
// @Failure 404 {object} errors.APIError
// @Failure 429 {object} errors.APIError
// @Router /devices/{id}/readings [get]
func (h *ReadingHandlers) GetReadings(w http.ResponseWriter, r *http.Request) {
	requestID := newRequestID(w)
	deviceID := mux.Vars(r)["id"]

	req, apiErr := h.parseReadingsRequest(r, deviceID)
	if apiErr != nil {
		h.observe(r.URL.Query().Get("range"), apiErr.Code)
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	readings, err := h.service.GenerateReadings(r.Context(), req)
	if err != nil {
		apiErr := toAPIError(err, "failed to generate readings")
		h.observe(req.Range.String(), apiErr.Code)
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}

	h.observe(req.Range.String(), http.StatusOK)
	respondWithJSON(w, http.StatusOK, readings)
}

func (h *ReadingHandlers) parseReadingsRequest(r *http.Request, deviceID string) (service.ReadingsRequest, *errors.APIError) {
	query := r.URL.Query()
	for _, key := range []string{"range", "start", "end"} {
		if len(query[key]) > 1 {
			return service.ReadingsRequest{}, errors.NewValidationError(
				fmt.Sprintf("%s may only be given once", key), nil)
		}
	}

	var q ReadingsQuery
	if err := h.decoder.Decode(&q, query); err != nil {
		return service.ReadingsRequest{}, errors.NewValidationError("invalid query parameters", err).
			WithDetails("start and end must be RFC3339 timestamps")
	}

	rng := h.defaultRange
	if q.Range != "" {
		rng = simulation.Range(q.Range)
		if !rng.Valid() {
			return service.ReadingsRequest{}, errors.NewValidationError(
				fmt.Sprintf("range %q is not one of %v", q.Range, simulation.Ranges), nil)
		}
	}

	// presence, not the zero time, decides whether a bound was given
	end := h.now()
	if query.Get("end") != "" {
		end = q.End
	}
	start := end.Add(-rng.Window())
	if query.Get("start") != "" {
		start = q.Start
	}

	return service.ReadingsRequest{
		DeviceID: deviceID,
		Range:    rng,
		Start:    start,
		End:      end,
	}, nil
}

func (h *ReadingHandlers) observe(rng string, status int) {
	if h.observer == nil {
		return
	}
	if !simulation.Range(rng).Valid() {
		rng = "invalid"
	}
	h.observer.ObserveRequest(rng, status)
}
