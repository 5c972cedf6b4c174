// Command genmock generates a synthetic USGS-style GeoJSON feed fixture for
// offline development and tests. Output is deterministic for a given seed,
// and always includes a handful of edge-case features (null magnitude,
// missing place, negative magnitude) so the defaulting paths stay covered.
//
// Usage:
//
//	go run ./cmd/genmock -count 200 -seed 1 -out testdata/feed.geojson
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/seismoview/quake-globe/internal/domain"
)

var baseTime = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	count := flag.Int("count", 100, "number of random events")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "", "output path (stdout when empty)")
	flag.Parse()

	if *count < 0 {
		return fmt.Errorf("-count must be >= 0")
	}

	fc := generate(*count, *seed)

	// Round-trip through the extractor so a fixture that would not parse
	// can never be written.
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	snapshot, err := domain.ExtractSnapshot(data)
	if err != nil {
		return fmt.Errorf("generated feed does not extract: %w", err)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %d features (%d extractable events)\n", len(fc.Features), len(snapshot.Events))
	return nil
}

func generate(count int, seed int64) domain.FeatureCollection {
	rng := rand.New(rand.NewSource(seed))

	features := make([]domain.Feature, 0, count+3)
	for i := 0; i < count; i++ {
		mag := rng.Float64()*9 - 1 // -1.0 .. 8.0
		place := fmt.Sprintf("%d km from Synthetic Town %d", rng.Intn(200), i)
		features = append(features, domain.Feature{
			ID: fmt.Sprintf("mock%06d", i),
			Geometry: domain.Geometry{
				Type: "Point",
				Coordinates: []float64{
					rng.Float64()*360 - 180, // lon
					rng.Float64()*180 - 90,  // lat
					rng.Float64() * 700,     // depth km
				},
			},
			Properties: domain.Properties{
				Mag:   &mag,
				Place: &place,
				Time:  baseTime.Add(time.Duration(i) * time.Minute).UnixMilli(),
			},
		})
	}

	// Edge cases: null magnitude, missing place, negative micro-quake.
	negMag := -0.4
	somewhere := "Somewhere"
	features = append(features,
		domain.Feature{
			ID:         "mock-null-mag",
			Geometry:   domain.Geometry{Type: "Point", Coordinates: []float64{139.7, 35.6, 10}},
			Properties: domain.Properties{Place: &somewhere, Time: baseTime.UnixMilli()},
		},
		domain.Feature{
			ID:         "mock-no-place",
			Geometry:   domain.Geometry{Type: "Point", Coordinates: []float64{0, 0, 0}},
			Properties: domain.Properties{Mag: &negMag, Time: baseTime.UnixMilli()},
		},
		domain.Feature{
			// No usable geometry; the extractor must skip this one.
			ID:         "mock-bad-geometry",
			Geometry:   domain.Geometry{Type: "Point", Coordinates: []float64{12.5}},
			Properties: domain.Properties{Time: baseTime.UnixMilli()},
		},
	)

	return domain.FeatureCollection{Type: "FeatureCollection", Features: features}
}
