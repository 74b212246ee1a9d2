// FilePath: internal/simulation/generator.go
package simulation

import (
	"fmt"
	"iter"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/binsight/hub/internal/models"
)

const (
	DefaultImageBaseURL = "https://images.binsight.io/devices"

	baseFillLevel      = 45.0
	fillAmplitude      = 20.0
	fillNoise          = 5.0
	distanceNoise      = 2.5
	baseTemperature    = 20.0
	temperatureSwing   = 5.0
	temperatureNoise   = 1.0
	baseHumidity       = 50.0
	humiditySwing      = 10.0
	humidityNoise      = 2.5
	batteryStart       = 95.0
	batteryDrain       = 10.0
	batteryFloor       = 20.0
	batteryWindow      = 7 * day
	minItemConfidence  = 0.8
	itemConfidenceSpan = 0.15
)

// Generator produces simulated bin readings for demo dashboards.
// A Generator holds no per-call state; it is safe for concurrent use as long
// as its Source is.
type Generator struct {
	src          Source
	imageBaseURL string
}

type Option func(*Generator)

// WithSource replaces the default process-wide random source
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithImageBaseURL sets the prefix of the generated image URLs
func WithImageBaseURL(base string) Option {
	return func(g *Generator) {
		if base != "" {
			g.imageBaseURL = strings.TrimRight(base, "/")
		}
	}
}

// New creates a Generator
func New(opts ...Option) *Generator {
	g := &Generator{
		src:          globalSource{},
		imageBaseURL: DefaultImageBaseURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Readings returns the series for deviceID covering [start, end] at the step
// of r. The sequence is evaluated lazily and can be ranged over repeatedly;
// every pass draws fresh values. A window with start after end is empty.
func (g *Generator) Readings(deviceID string, start, end time.Time, r Range) iter.Seq[models.Reading] {
	step := r.Step()
	return func(yield func(models.Reading) bool) {
		for current := start; !current.After(end); current = current.Add(step) {
			if !yield(g.reading(deviceID, start, current)) {
				return
			}
		}
	}
}

// Collect materialises Readings into a slice. The result is never nil.
func (g *Generator) Collect(deviceID string, start, end time.Time, r Range) []models.Reading {
	readings := make([]models.Reading, 0, Count(start, end, r))
	for reading := range g.Readings(deviceID, start, end, r) {
		readings = append(readings, reading)
	}
	return readings
}

func (g *Generator) reading(deviceID string, start, current time.Time) models.Reading {
	// one radian per day of wall-clock time
	wave := math.Sin(float64(current.UnixMilli()) / float64(day.Milliseconds()))

	fillLevel := clamp(baseFillLevel+fillAmplitude*wave+g.noise(fillNoise), 0, 100)
	distanceToTop := 100 - fillLevel + g.noise(distanceNoise)
	items := g.detectItems(fillLevel)
	temperature := baseTemperature + temperatureSwing*wave + g.noise(temperatureNoise)
	humidity := clamp(baseHumidity+humiditySwing*wave+g.noise(humidityNoise), 0, 100)

	elapsed := float64(current.Sub(start)) / float64(batteryWindow)
	battery := math.Max(batteryFloor, batteryStart-batteryDrain*elapsed)

	sinceCollection := time.Duration((1 + 2*g.src.Float64()) * float64(day))

	return models.Reading{
		Timestamp:      current,
		FillLevel:      fillLevel,
		DistanceToTop:  distanceToTop,
		ItemsDetected:  items,
		Temperature:    temperature,
		Humidity:       humidity,
		BatteryLevel:   battery,
		LastCollected:  current.Add(-sinceCollection),
		ProcessingTime: 50 + int(g.src.Float64()*450),
		Confidence:     g.between(0.85, 0.99),
		ImageURL:       g.imageURL(deviceID, current),
	}
}

// detectItems spreads a fill-dependent number of picks over the waste
// categories. Each pick bumps one category by 1..5 and re-rolls its confidence.
func (g *Generator) detectItems(fillLevel float64) []models.ItemDetection {
	n := len(models.WasteCategories)
	counts := make([]int, n)
	confidences := make([]float64, n)

	picks := int(fillLevel/10) + int(g.src.Float64()*3)
	for range picks {
		idx := min(int(g.src.Float64()*float64(n)), n-1)
		counts[idx] += 1 + int(g.src.Float64()*5)
		confidences[idx] = minItemConfidence + g.src.Float64()*itemConfidenceSpan
	}

	items := make([]models.ItemDetection, 0, n)
	for i, category := range models.WasteCategories {
		if counts[i] == 0 {
			continue
		}
		items = append(items, models.ItemDetection{
			Category:   category,
			Confidence: confidences[i],
			Count:      counts[i],
		})
	}
	return items
}

func (g *Generator) imageURL(deviceID string, ts time.Time) string {
	return fmt.Sprintf("%s/%s/%d.jpg", g.imageBaseURL, url.PathEscape(deviceID), ts.UnixMilli())
}

// noise returns a uniform value in [-amplitude, amplitude)
func (g *Generator) noise(amplitude float64) float64 {
	return (g.src.Float64()*2 - 1) * amplitude
}

func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.src.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
