// FilePath: api/resources/resources.go
package resources

import (
	"net/http"

	"github.com/binsight/hub/internal/service"
	"github.com/binsight/hub/internal/simulation"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Readings *ReadingHandlers
	System   *SystemHandlers
}

// Options carries the optional collaborators of the handlers
type Options struct {
	Observer     RequestObserver
	Metrics      http.Handler
	DefaultRange simulation.Range
}

// NewResources creates a new Resources instance
func NewResources(svc *service.Service, opts Options) *Resources {
	return &Resources{
		Readings: NewReadingHandlers(svc, opts.Observer, opts.DefaultRange),
		System:   &SystemHandlers{pinger: svc, metrics: opts.Metrics},
	}
}
