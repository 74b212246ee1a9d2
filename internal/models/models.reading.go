// FilePath: internal/models/models.reading.go
package models

import "time"

// WasteCategory is one of the item classes a bin camera can detect
type WasteCategory string

const (
	Paper     WasteCategory = "Paper"
	Plastic   WasteCategory = "Plastic"
	Cardboard WasteCategory = "Cardboard"
	Metal     WasteCategory = "Metal"
	Glass     WasteCategory = "Glass"
	Organic   WasteCategory = "Organic"
)

// WasteCategories lists the detectable categories in their reporting order
var WasteCategories = []WasteCategory{Paper, Plastic, Cardboard, Metal, Glass, Organic}

// ItemDetection is the per-category result of one detection pass
type ItemDetection struct {
	Category   WasteCategory `json:"category"`
	Confidence float64       `json:"confidence"`
	Count      int           `json:"count"`
}

// Reading is a single simulated smart-bin sensor sample. Readings are
// generated on demand and never stored.
type Reading struct {
	Timestamp      time.Time       `json:"timestamp"`
	FillLevel      float64         `json:"fillLevel"`
	DistanceToTop  float64         `json:"distanceToTop"`
	ItemsDetected  []ItemDetection `json:"itemsDetected"`
	Temperature    float64         `json:"temperature"`
	Humidity       float64         `json:"humidity"`
	BatteryLevel   float64         `json:"batteryLevel"`
	LastCollected  time.Time       `json:"lastCollected"`
	ProcessingTime int             `json:"processingTime"`
	Confidence     float64         `json:"confidence"`
	ImageURL       string          `json:"imageUrl"`
}
