package geo

import "math"

// SphereMesh generates a regular latitude/longitude grid of points on a
// sphere of the given radius, flattened into parallel coordinate slices for
// a Mesh3d alphahull shell. rows spans the polar angle [0, π], cols spans
// the azimuth [0, 2π]; rows and cols below 2 are raised to 2 so the hull is
// never degenerate.
func SphereMesh(rows, cols int, radius float64) (xs, ys, zs []float64) {
	if rows < 2 {
		rows = 2
	}
	if cols < 2 {
		cols = 2
	}

	xs = make([]float64, 0, rows*cols)
	ys = make([]float64, 0, rows*cols)
	zs = make([]float64, 0, rows*cols)

	for i := 0; i < rows; i++ {
		phi := math.Pi * float64(i) / float64(rows-1)
		for j := 0; j < cols; j++ {
			theta := 2 * math.Pi * float64(j) / float64(cols-1)
			xs = append(xs, radius*math.Sin(phi)*math.Cos(theta))
			ys = append(ys, radius*math.Sin(phi)*math.Sin(theta))
			zs = append(zs, radius*math.Cos(phi))
		}
	}
	return xs, ys, zs
}

// FlattenRings projects border rings onto the surface sphere and
// concatenates them into parallel coordinate slices, appending one NaN break
// marker after each ring. The break markers keep the renderer from
// connecting unrelated rings; they encode as JSON null and are never
// plotted.
func FlattenRings(rings []Ring, radius float64) (xs, ys, zs []float64) {
	for _, ring := range rings {
		for _, pt := range ring {
			v := LatLonToXYZ(pt.Lat, pt.Lon, radius)
			xs = append(xs, v.X)
			ys = append(ys, v.Y)
			zs = append(zs, v.Z)
		}
		xs = append(xs, math.NaN())
		ys = append(ys, math.NaN())
		zs = append(zs, math.NaN())
	}
	return xs, ys, zs
}
