package borders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/geo"
)

func TestParseRings_Polygon(t *testing.T) {
	doc := `{"features":[{"geometry":{
		"type": "Polygon",
		"coordinates": [[[10.0, 50.0], [11.0, 50.0], [11.0, 51.0], [10.0, 50.0]]]
	}}]}`

	rings, err := ParseRings([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rings, 1)
	require.Len(t, rings[0], 4)
	// GeoJSON order is [lon, lat].
	assert.Equal(t, geo.LatLon{Lat: 50, Lon: 10}, rings[0][0])
	assert.Equal(t, geo.LatLon{Lat: 51, Lon: 11}, rings[0][2])
}

func TestParseRings_MultiPolygonAllRings(t *testing.T) {
	doc := `{"features":[{"geometry":{
		"type": "MultiPolygon",
		"coordinates": [
			[[[0,0],[1,0],[1,1],[0,0]], [[0.2,0.2],[0.4,0.2],[0.2,0.4],[0.2,0.2]]],
			[[[10,10],[11,10],[10,11],[10,10]]]
		]
	}}]}`

	rings, err := ParseRings([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, rings, 3, "outer and hole rings of every polygon")
}

func TestParseRings_MalformedRingSkipped(t *testing.T) {
	doc := `{"features":[{"geometry":{
		"type": "Polygon",
		"coordinates": [
			[["oops", 1], [2, 2], [3, 3]],
			[[10, 50], [11, 50], [11, 51]]
		]
	}}]}`

	rings, err := ParseRings([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rings, 1, "non-numeric ring dropped, good ring kept")
	assert.Equal(t, geo.LatLon{Lat: 50, Lon: 10}, rings[0][0])
}

func TestParseRings_ShortPositionSkipsRing(t *testing.T) {
	doc := `{"features":[{"geometry":{
		"type": "Polygon",
		"coordinates": [[[10], [11, 50]]]
	}}]}`

	rings, err := ParseRings([]byte(doc))
	require.NoError(t, err)
	assert.Empty(t, rings)
}

func TestParseRings_ExtraDimensionsIgnored(t *testing.T) {
	doc := `{"features":[{"geometry":{
		"type": "Polygon",
		"coordinates": [[[10, 50, 0, 99], [11, 50, 0]]]
	}}]}`

	rings, err := ParseRings([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rings, 1)
}

func TestParseRings_UnsupportedGeometrySkipped(t *testing.T) {
	doc := `{"features":[
		{"geometry":{"type": "Point", "coordinates": [1, 2]}},
		{"geometry":{"type": "Polygon", "coordinates": [[[0,0],[1,1],[0,0]]]}}
	]}`

	rings, err := ParseRings([]byte(doc))
	require.NoError(t, err)
	assert.Len(t, rings, 1)
}

func TestParseRings_InvalidDocumentIsParseError(t *testing.T) {
	_, err := ParseRings([]byte("not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParseRings_EmptyCollection(t *testing.T) {
	rings, err := ParseRings([]byte(`{"features":[]}`))
	require.NoError(t, err)
	assert.Empty(t, rings)
}
