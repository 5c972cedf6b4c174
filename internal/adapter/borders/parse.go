package borders

import (
	"encoding/json"
	"fmt"

	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/geo"
)

// GeoJSON document types. Coordinates stay raw because their nesting depth
// depends on geometry type, and because a misshapen ring must be skippable
// without rejecting the rest of the document.
type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ParseRings extracts every Polygon and MultiPolygon ring from a GeoJSON
// FeatureCollection as (lat, lon) sequences. A document that is not JSON
// wraps domain.ErrParse; malformed rings and unsupported geometry types are
// skipped individually.
func ParseRings(body []byte) ([]geo.Ring, error) {
	var fc featureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, fmt.Errorf("%w: borders document: %w", domain.ErrParse, err)
	}

	var rings []geo.Ring
	for _, f := range fc.Features {
		switch f.Geometry.Type {
		case "Polygon":
			rings = append(rings, polygonRings(f.Geometry.Coordinates)...)
		case "MultiPolygon":
			var polys []json.RawMessage
			if err := json.Unmarshal(f.Geometry.Coordinates, &polys); err != nil {
				continue
			}
			for _, p := range polys {
				rings = append(rings, polygonRings(p)...)
			}
		}
	}
	return rings, nil
}

// polygonRings decodes one polygon's ring list, dropping rings whose
// coordinate arrays are non-numeric or misshapen.
func polygonRings(raw json.RawMessage) []geo.Ring {
	var rawRings []json.RawMessage
	if err := json.Unmarshal(raw, &rawRings); err != nil {
		return nil
	}

	rings := make([]geo.Ring, 0, len(rawRings))
	for _, rr := range rawRings {
		ring, ok := decodeRing(rr)
		if !ok {
			continue
		}
		rings = append(rings, ring)
	}
	return rings
}

// decodeRing parses a ring as a [lon, lat, ...] position list. Positions
// need at least two numbers; extra dimensions are ignored per the GeoJSON
// spec. Returns false for rings with fewer than two usable positions.
func decodeRing(raw json.RawMessage) (geo.Ring, bool) {
	var positions [][]float64
	if err := json.Unmarshal(raw, &positions); err != nil {
		return nil, false
	}

	ring := make(geo.Ring, 0, len(positions))
	for _, pos := range positions {
		if len(pos) < 2 {
			return nil, false
		}
		ring = append(ring, geo.LatLon{Lat: pos[1], Lon: pos[0]})
	}
	if len(ring) < 2 {
		return nil, false
	}
	return ring, true
}
