// Package geo converts geographic coordinates into 3D Cartesian points on a
// mean-radius sphere. All functions are pure and element-wise; they are
// well-defined for any finite numeric input.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for all globe geometry
// (kilometres). Depths from the quake feed are measured from this shell.
const EarthRadiusKm = 6371.0

// Vec3 is a Cartesian point in kilometres, origin at the Earth's centre.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the straight-line distance between two points.
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// LatLon is a WGS-84 style coordinate pair in degrees.
type LatLon struct {
	Lat float64
	Lon float64
}

// Ring is an ordered border polyline, closed by convention (GeoJSON rings
// repeat the first vertex at the end).
type Ring []LatLon

// LatLonToXYZ places a surface coordinate on a sphere of the given radius
// using the standard spherical parameterization:
//
//	x = r·cos(lat)·cos(lon)
//	y = r·cos(lat)·sin(lon)
//	z = r·sin(lat)
func LatLonToXYZ(latDeg, lonDeg, radius float64) Vec3 {
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	return Vec3{
		X: radius * math.Cos(lat) * math.Cos(lon),
		Y: radius * math.Cos(lat) * math.Sin(lon),
		Z: radius * math.Sin(lat),
	}
}

// DepthToXYZ places a hypocentre inside the globe. Depth always subtracts
// from the surface radius, scaled by the visual exaggeration factor, so the
// resulting point lies at distance EarthRadiusKm − depth·exaggeration from
// the origin. Shallow events with negative catalog depths land slightly
// above the shell, which is the catalog's meaning.
func DepthToXYZ(latDeg, lonDeg, depthKm, exaggeration float64) Vec3 {
	return LatLonToXYZ(latDeg, lonDeg, EarthRadiusKm-depthKm*exaggeration)
}
