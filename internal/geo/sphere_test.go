package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSphereMesh_PointCountAndRadius(t *testing.T) {
	xs, ys, zs := SphereMesh(50, 50, EarthRadiusKm)

	require.Len(t, xs, 2500)
	require.Len(t, ys, 2500)
	require.Len(t, zs, 2500)

	for i := range xs {
		r := math.Sqrt(xs[i]*xs[i] + ys[i]*ys[i] + zs[i]*zs[i])
		assert.InDelta(t, EarthRadiusKm, r, 1e-6)
	}
}

func TestSphereMesh_DegenerateGridRaised(t *testing.T) {
	xs, _, _ := SphereMesh(0, 1, 1)
	assert.Len(t, xs, 4) // raised to 2x2
}

func TestSphereMesh_CoversPoles(t *testing.T) {
	_, _, zs := SphereMesh(10, 10, EarthRadiusKm)
	assert.InDelta(t, EarthRadiusKm, zs[0], 1e-6)
	assert.InDelta(t, -EarthRadiusKm, zs[len(zs)-1], 1e-6)
}

func TestFlattenRings_OneBreakPerRing(t *testing.T) {
	rings := []Ring{
		{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 10}, {Lat: 10, Lon: 10}, {Lat: 0, Lon: 0}},
		{{Lat: 50, Lon: 50}, {Lat: 51, Lon: 50}, {Lat: 50, Lon: 50}},
	}

	xs, ys, zs := FlattenRings(rings, EarthRadiusKm)

	// 4 + 3 points plus one break after each ring.
	require.Len(t, xs, 9)
	require.Len(t, ys, 9)
	require.Len(t, zs, 9)

	breaks := 0
	for i := range xs {
		if math.IsNaN(xs[i]) {
			assert.True(t, math.IsNaN(ys[i]), "break markers must align across axes")
			assert.True(t, math.IsNaN(zs[i]), "break markers must align across axes")
			breaks++
		}
	}
	assert.Equal(t, 2, breaks)

	// The separator follows each ring immediately.
	assert.True(t, math.IsNaN(xs[4]))
	assert.True(t, math.IsNaN(xs[8]))
}

func TestFlattenRings_PointsStayOnSurface(t *testing.T) {
	rings := []Ring{{{Lat: 35.6, Lon: 139.7}, {Lat: 35.7, Lon: 139.8}}}
	xs, ys, zs := FlattenRings(rings, EarthRadiusKm)

	for i := range xs {
		if math.IsNaN(xs[i]) {
			continue
		}
		r := math.Sqrt(xs[i]*xs[i] + ys[i]*ys[i] + zs[i]*zs[i])
		assert.InDelta(t, EarthRadiusKm, r, 1e-6)
	}
}

func TestFlattenRings_Empty(t *testing.T) {
	xs, ys, zs := FlattenRings(nil, EarthRadiusKm)
	assert.Empty(t, xs)
	assert.Empty(t, ys)
	assert.Empty(t, zs)
}
