// Package figure composes Plotly 3D globe figures from earthquake
// snapshots. Compose is a pure function of (snapshot, borders, options); the
// interactive UI calls it on every slider change without touching the feed.
package figure

import (
	"fmt"
	"strconv"

	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/geo"
)

// Slider bounds and defaults, mirrored by the web UI controls.
const (
	MinSizeScale     = 1.0
	MaxSizeScale     = 10.0
	DefaultSizeScale = 3.0

	MinDepthScale     = 1.0
	MaxDepthScale     = 50.0
	DefaultDepthScale = 10.0
)

// minDisplayMagnitude floors marker sizing so negative and zero magnitudes
// still produce a visible, positive-size marker.
const minDisplayMagnitude = 0.1

// Depth color domain in kilometres. 700 km is roughly the deepest recorded
// hypocentre, so the fixed bounds keep colors comparable across fetches.
const (
	depthColorMin = 0.0
	depthColorMax = 700.0
)

// DefaultSphereGrid is the lat/lon resolution of the reference shell.
const DefaultSphereGrid = 50

// Options are the two user-facing controls plus the shell resolution.
type Options struct {
	SizeScale  float64
	DepthScale float64
	SphereGrid int
}

// DefaultOptions returns the slider defaults.
func DefaultOptions() Options {
	return Options{
		SizeScale:  DefaultSizeScale,
		DepthScale: DefaultDepthScale,
		SphereGrid: DefaultSphereGrid,
	}
}

// Clamp forces the options into their documented ranges, substituting
// defaults for non-finite or zero values.
func (o Options) Clamp() Options {
	o.SizeScale = clamp(o.SizeScale, MinSizeScale, MaxSizeScale, DefaultSizeScale)
	o.DepthScale = clamp(o.DepthScale, MinDepthScale, MaxDepthScale, DefaultDepthScale)
	if o.SphereGrid < 2 {
		o.SphereGrid = DefaultSphereGrid
	}
	return o
}

func clamp(v, min, max, def float64) float64 {
	switch {
	case v != v: // NaN
		return def
	case v == 0:
		return def
	case v < min:
		return min
	case v > max:
		return max
	default:
		return v
	}
}

// BorderSet is a pre-flattened country border polyline trace. Building it
// once per fetch keeps slider updates from re-projecting every ring.
type BorderSet struct {
	X, Y, Z Coords
}

// Empty reports whether there are no border points to draw.
func (b BorderSet) Empty() bool { return len(b.X) == 0 }

// BuildBorders projects border rings onto the surface shell with one break
// marker per ring.
func BuildBorders(rings []geo.Ring) BorderSet {
	xs, ys, zs := geo.FlattenRings(rings, geo.EarthRadiusKm)
	return BorderSet{X: xs, Y: ys, Z: zs}
}

// Compose assembles the globe figure: a translucent reference shell, the
// optional border polylines, and the quake point cloud sized by magnitude
// and colored by true (unexaggerated) depth.
func Compose(snapshot *domain.Snapshot, borders BorderSet, opts Options) Figure {
	opts = opts.Clamp()

	traces := []Trace{sphereTrace(opts.SphereGrid)}
	if !borders.Empty() {
		traces = append(traces, borderTrace(borders))
	}
	traces = append(traces, quakeTrace(snapshot, opts))

	return Figure{Data: traces, Layout: globeLayout()}
}

func sphereTrace(grid int) Trace {
	xs, ys, zs := geo.SphereMesh(grid, grid, geo.EarthRadiusKm)
	hull := 0
	return Trace{
		Type:      "mesh3d",
		X:         xs,
		Y:         ys,
		Z:         zs,
		AlphaHull: &hull,
		Opacity:   0.1,
		Color:     "black",
		HoverInfo: "skip",
	}
}

func borderTrace(borders BorderSet) Trace {
	return Trace{
		Type:      "scatter3d",
		X:         borders.X,
		Y:         borders.Y,
		Z:         borders.Z,
		Mode:      "lines",
		Line:      &Line{Color: "cyan", Width: 1},
		HoverInfo: "skip",
		Name:      "Countries",
		Opacity:   0.3,
	}
}

func quakeTrace(snapshot *domain.Snapshot, opts Options) Trace {
	n := 0
	if snapshot != nil {
		n = len(snapshot.Events)
	}

	xs := make(Coords, n)
	ys := make(Coords, n)
	zs := make(Coords, n)
	sizes := make([]float64, n)
	depths := make([]float64, n)
	text := make([]string, n)

	for i := 0; i < n; i++ {
		ev := snapshot.Events[i]
		v := geo.DepthToXYZ(ev.Lat, ev.Lon, ev.DepthKm, opts.DepthScale)
		xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
		sizes[i] = displaySize(ev.Magnitude, opts.SizeScale)
		depths[i] = ev.DepthKm
		text[i] = hoverText(ev, opts.DepthScale)
	}

	cmin := depthColorMin
	cmax := depthColorMax
	return Trace{
		Type: "scatter3d",
		X:    xs,
		Y:    ys,
		Z:    zs,
		Mode: "markers",
		Marker: &Marker{
			Size:       sizes,
			Color:      depths,
			ColorScale: "Turbo",
			CMin:       &cmin,
			CMax:       &cmax,
			ColorBar:   &ColorBar{Title: "Real Depth (km)", X: 0},
			Opacity:    0.9,
			Line:       &Line{Width: 0},
		},
		Text:      text,
		HoverInfo: "text",
		Name:      "Quakes",
	}
}

// displaySize converts a magnitude to a marker size, clamping to the 0.1
// floor so micro-quakes with negative magnitudes stay visible.
func displaySize(magnitude, sizeScale float64) float64 {
	if magnitude < minDisplayMagnitude {
		magnitude = minDisplayMagnitude
	}
	return magnitude * sizeScale
}

func hoverText(ev domain.Event, depthScale float64) string {
	return fmt.Sprintf("%s<br>Mag: %s<br>Depth: %skm<br>(Vis Depth: %.0fkm)",
		ev.Place,
		strconv.FormatFloat(ev.Magnitude, 'g', -1, 64),
		strconv.FormatFloat(ev.DepthKm, 'g', -1, 64),
		ev.DepthKm*depthScale,
	)
}

func globeLayout() Layout {
	return Layout{
		PaperBgColor: "black",
		PlotBgColor:  "black",
		Scene: Scene{
			XAxis:      Axis{},
			YAxis:      Axis{},
			ZAxis:      Axis{},
			AspectMode: "data",
			Camera: Camera{
				Eye:    Point3{X: 0.6, Y: 0.6, Z: 0.6},
				Center: Point3{},
			},
			DragMode: "orbit",
		},
		Margin: Margin{},
		Legend: &Legend{Font: Font{Color: "white"}},
	}
}
