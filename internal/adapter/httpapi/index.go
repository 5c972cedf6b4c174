package httpapi

import (
	_ "embed"
	"html/template"
	"net/http"

	"github.com/seismoview/quake-globe/internal/figure"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// indexData feeds the slider bounds into the page so the UI and the figure
// package cannot drift apart.
type indexData struct {
	SizeMin, SizeMax, SizeStep, SizeDefault     float64
	DepthMin, DepthMax, DepthStep, DepthDefault float64
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data := indexData{
		SizeMin: figure.MinSizeScale, SizeMax: figure.MaxSizeScale,
		SizeStep: 0.5, SizeDefault: figure.DefaultSizeScale,
		DepthMin: figure.MinDepthScale, DepthMax: figure.MaxDepthScale,
		DepthStep: 1, DepthDefault: figure.DefaultDepthScale,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "error", err)
	}
}
