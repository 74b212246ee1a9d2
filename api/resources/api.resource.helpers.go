// FilePath: api/resources/api.resource.helpers.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/binsight/hub/internal/errors"
	nuts "github.com/vaudience/go-nuts"
)

func newRequestID(w http.ResponseWriter) string {
	id := nuts.NID("req", 12)
	w.Header().Set("X-Request-ID", id)
	return id
}

// toAPIError keeps typed errors and hides everything else behind a 500
func toAPIError(err error, fallback string) *errors.APIError {
	if apiErr, ok := errors.As(err); ok {
		return apiErr
	}
	return errors.NewInternalError(fallback, err)
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		nuts.L.Errorf("[API] Failed to encode response: %v", err)
	}
}
