// Command render is the one-shot variant: fetch the quake feed, compose a
// globe figure, and write it out as a self-contained interactive HTML file.
// A quake feed failure is fatal; a borders failure just drops the overlay.
//
// Usage:
//
//	go run ./cmd/render -out globe.html -size 3 -depth 10
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"html/template"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	bordersadapter "github.com/seismoview/quake-globe/internal/adapter/borders"
	"github.com/seismoview/quake-globe/internal/adapter/usgs"
	"github.com/seismoview/quake-globe/internal/config"
	"github.com/seismoview/quake-globe/internal/figure"
	"github.com/seismoview/quake-globe/internal/observability"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Earthquake Depth Map</title>
  <script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
  <style>body { background: black; margin: 0; } #earth-graph { height: 100vh; }</style>
</head>
<body>
  <div id="earth-graph"></div>
  <script>
    const fig = {{.FigureJSON}};
    Plotly.newPlot("earth-graph", fig.data, fig.layout, {responsive: true});
  </script>
</body>
</html>
`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "globe.html", "output HTML file path")
	size := flag.Float64("size", figure.DefaultSizeScale, "marker size scale (1-10)")
	depth := flag.Float64("depth", figure.DefaultDepthScale, "depth exaggeration (1-50)")
	feedURL := flag.String("feed", config.DefaultQuakeFeedURL, "quake feed URL")
	bordersURL := flag.String("borders", config.DefaultBordersURL, "country borders URL; empty disables the overlay")
	timeout := flag.Duration("timeout", 10*time.Second, "per-request fetch timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	metrics := observability.NewMetrics()
	ctx := context.Background()

	quakes := usgs.NewClient(*feedURL, *timeout, metrics, logger)
	snapshot, err := quakes.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch quake feed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "fetched %d events\n", len(snapshot.Events))

	var borderSet figure.BorderSet
	if *bordersURL != "" {
		rings, err := bordersadapter.NewClient(*bordersURL, *timeout, metrics, logger).Fetch(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "borders unavailable, rendering without overlay: %v\n", err)
		} else {
			borderSet = figure.BuildBorders(rings)
		}
	}

	opts := figure.Options{SizeScale: *size, DepthScale: *depth}
	fig := figure.Compose(snapshot, borderSet, opts)

	figJSON, err := json.Marshal(fig)
	if err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	tmpl := template.Must(template.New("page").Parse(pageTemplate))
	if err := tmpl.Execute(f, struct{ FigureJSON template.JS }{template.JS(figJSON)}); err != nil {
		return fmt.Errorf("write page: %w", err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s\n", *out)
	return nil
}
