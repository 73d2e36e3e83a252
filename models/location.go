package models

// Coordinates is the last-known client location. Single slot, overwritten
// on each update, persisted across restarts.
type Coordinates struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy,omitempty"`
}

// LocationStatus classifies the outcome of the most recent location request.
type LocationStatus string

const (
	LocationIdle        LocationStatus = "idle"
	LocationPrompting   LocationStatus = "prompting"
	LocationGranted     LocationStatus = "granted"
	LocationDenied      LocationStatus = "denied"
	LocationUnsupported LocationStatus = "unsupported"
	LocationError       LocationStatus = "error"
)
