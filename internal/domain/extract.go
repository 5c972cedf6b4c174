package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// UnknownPlace is the display name for events whose feed record carries no
// place string.
const UnknownPlace = "Unknown"

// ExtractSnapshot decodes a USGS GeoJSON summary document into a Snapshot.
// A document that is not valid JSON is an error; per-feature problems are
// not. Features whose geometry has fewer than three coordinates are skipped,
// and missing magnitude or place values are defaulted rather than rejected.
func ExtractSnapshot(body []byte) (*Snapshot, error) {
	var fc FeatureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, fmt.Errorf("parse quake feed: %w", err)
	}

	events := make([]Event, 0, len(fc.Features))
	for _, f := range fc.Features {
		event, ok := extractEvent(f)
		if !ok {
			continue
		}
		events = append(events, event)
	}

	return &Snapshot{Events: events, FetchedAt: clock.Now().UTC()}, nil
}

// extractEvent pulls one Event out of a GeoJSON feature. Returns false when
// the geometry cannot yield a position.
func extractEvent(f Feature) (Event, bool) {
	if len(f.Geometry.Coordinates) < 3 {
		return Event{}, false
	}
	lon := f.Geometry.Coordinates[0]
	lat := f.Geometry.Coordinates[1]
	depth := f.Geometry.Coordinates[2]

	var mag float64
	if f.Properties.Mag != nil {
		mag = *f.Properties.Mag
	}

	place := UnknownPlace
	if f.Properties.Place != nil && *f.Properties.Place != "" {
		place = *f.Properties.Place
	}

	eventTime := time.UnixMilli(f.Properties.Time).UTC()

	id := f.ID
	if id == "" {
		id = generateID(lat, lon, depth, f.Properties.Time)
	}

	return Event{
		ID:        id,
		Time:      eventTime,
		Lat:       lat,
		Lon:       lon,
		DepthKm:   depth,
		Magnitude: mag,
		Place:     place,
	}, true
}

// generateID produces a deterministic ID from the event's position and time
// for the rare feature that arrives without one. Reprocessing the same feed
// document yields the same IDs, which keeps downstream sink publishing
// idempotent.
func generateID(lat, lon, depth float64, epochMillis int64) string {
	input := fmt.Sprintf("%.4f|%.4f|%.1f|%d", lat, lon, depth, epochMillis)
	hash := sha256.Sum256([]byte(input))
	return "quake-" + hex.EncodeToString(hash[:8])
}
