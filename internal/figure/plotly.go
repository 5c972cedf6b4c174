package figure

import (
	"math"
	"strconv"
	"strings"
)

// Coords is a coordinate slice for a Plotly trace. NaN entries are break
// markers: they marshal as JSON null, which Plotly treats as a gap rather
// than a point.
type Coords []float64

// MarshalJSON encodes the slice as a JSON array with null for NaN entries.
// encoding/json rejects NaN outright, so this is hand-rolled.
func (c Coords) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.Grow(len(c)*8 + 2)
	b.WriteByte('[')
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		if math.IsNaN(v) {
			b.WriteString("null")
			continue
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte(']')
	return []byte(b.String()), nil
}

// Figure is the subset of the Plotly figure schema the globe needs,
// marshalled for plotly.js on the client.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace covers both Scatter3d and Mesh3d traces; zero-valued fields are
// omitted so each trace only carries the attributes its type uses.
type Trace struct {
	Type      string   `json:"type"`
	X         Coords   `json:"x"`
	Y         Coords   `json:"y"`
	Z         Coords   `json:"z"`
	Mode      string   `json:"mode,omitempty"`
	Name      string   `json:"name,omitempty"`
	Text      []string `json:"text,omitempty"`
	HoverInfo string   `json:"hoverinfo,omitempty"`
	Opacity   float64  `json:"opacity,omitempty"`
	Line      *Line    `json:"line,omitempty"`
	Marker    *Marker  `json:"marker,omitempty"`

	// Mesh3d attributes.
	AlphaHull *int   `json:"alphahull,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Line styles a Scatter3d lines-mode trace or a marker outline. Width is
// always emitted: a marker outline is only suppressed by an explicit 0.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width"`
}

// Marker styles a Scatter3d markers-mode trace.
type Marker struct {
	Size       []float64 `json:"size,omitempty"`
	Color      []float64 `json:"color,omitempty"`
	ColorScale string    `json:"colorscale,omitempty"`
	CMin       *float64  `json:"cmin,omitempty"`
	CMax       *float64  `json:"cmax,omitempty"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`
	Opacity    float64   `json:"opacity,omitempty"`
	Line       *Line     `json:"line,omitempty"`
}

// ColorBar labels the marker color scale.
type ColorBar struct {
	Title string  `json:"title,omitempty"`
	X     float64 `json:"x"`
}

// Layout holds scene and chrome settings for the 3D globe.
type Layout struct {
	PaperBgColor string  `json:"paper_bgcolor,omitempty"`
	PlotBgColor  string  `json:"plot_bgcolor,omitempty"`
	Scene        Scene   `json:"scene"`
	Margin       Margin  `json:"margin"`
	Legend       *Legend `json:"legend,omitempty"`
}

// Scene configures the 3D axes, aspect ratio, and camera.
type Scene struct {
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	ZAxis      Axis   `json:"zaxis"`
	AspectMode string `json:"aspectmode,omitempty"`
	Camera     Camera `json:"camera"`
	DragMode   string `json:"dragmode,omitempty"`
}

// Axis hides or shows one scene axis.
type Axis struct {
	Visible        bool `json:"visible"`
	ShowBackground bool `json:"showbackground"`
}

// Camera presets the scene viewpoint.
type Camera struct {
	Eye    Point3 `json:"eye"`
	Center Point3 `json:"center"`
}

// Point3 is a camera coordinate triple.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Margin is the figure margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Legend styles the trace legend.
type Legend struct {
	Font Font `json:"font"`
}

// Font is a minimal font spec.
type Font struct {
	Color string `json:"color,omitempty"`
}
