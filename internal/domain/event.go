package domain

import "time"

// Event is one earthquake record extracted from the USGS feed.
// Immutable once extracted.
type Event struct {
	ID        string    `json:"id"`
	Time      time.Time `json:"time"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	DepthKm   float64   `json:"depth_km"`
	Magnitude float64   `json:"magnitude"`
	Place     string    `json:"place"`
}

// Snapshot is the full event set from one feed fetch. The feed is consumed
// whole, so a snapshot is complete or empty, never partial, and is read-only
// after construction. Render requests compose figures from whichever
// snapshot is current.
type Snapshot struct {
	Events    []Event   `json:"events"`
	FetchedAt time.Time `json:"fetched_at"`
}

// EmptySnapshot returns a snapshot with no events, used when the primary
// feed is unreachable and the interactive service degrades to an empty globe.
func EmptySnapshot() *Snapshot {
	return &Snapshot{Events: []Event{}, FetchedAt: clock.Now().UTC()}
}

// FeatureCollection mirrors the USGS GeoJSON summary feed document.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a single GeoJSON earthquake feature.
type Feature struct {
	ID         string     `json:"id"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry holds the feature's point coordinates as [lon, lat, depth_km].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Properties carries the quake metadata the globe uses. Mag and Place are
// pointers because the feed omits or nulls them; extraction defaults them.
type Properties struct {
	Mag   *float64 `json:"mag"`
	Place *string  `json:"place"`
	Time  int64    `json:"time"` // epoch milliseconds
}
