// Command validate checks a saved quake feed document (real or generated by
// genmock) before it is used as a test fixture: the document must parse, the
// extracted events must be geographically sane, and the coordinate transform
// must place every surface projection on the reference shell.
//
// Usage:
//
//	go run ./cmd/validate -feed testdata/feed.geojson
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/geo"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	feedPath := flag.String("feed", "", "path to a GeoJSON feed document")
	flag.Parse()

	if *feedPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	os.Exit(run(*feedPath))
}

func run(feedPath string) int {
	body, err := os.ReadFile(feedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read feed: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkDocument(body),
		checkExtraction(body),
		checkTransform(body),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// checkDocument verifies the raw document is a feature collection.
func checkDocument(body []byte) *phase {
	p := &phase{name: "document"}

	var fc domain.FeatureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		p.errorf("not a GeoJSON document: %v", err)
		return p
	}
	if fc.Type != "FeatureCollection" {
		p.errorf("type is %q, want FeatureCollection", fc.Type)
	}
	if len(fc.Features) == 0 {
		p.errorf("document has no features")
	}
	return p
}

// checkExtraction verifies events extract with sane coordinates and that
// defaulting produced no empty places.
func checkExtraction(body []byte) *phase {
	p := &phase{name: "extraction"}

	snapshot, err := domain.ExtractSnapshot(body)
	if err != nil {
		p.errorf("extract: %v", err)
		return p
	}
	if len(snapshot.Events) == 0 {
		p.errorf("no extractable events")
	}
	for _, ev := range snapshot.Events {
		if ev.Lat < -90 || ev.Lat > 90 {
			p.errorf("event %s: latitude %.4f out of range", ev.ID, ev.Lat)
		}
		if ev.Lon < -180 || ev.Lon > 180 {
			p.errorf("event %s: longitude %.4f out of range", ev.ID, ev.Lon)
		}
		if ev.Place == "" {
			p.errorf("event %s: empty place after defaulting", ev.ID)
		}
		if ev.ID == "" {
			p.errorf("event at (%.2f, %.2f): empty ID", ev.Lat, ev.Lon)
		}
	}
	return p
}

// checkTransform projects every event onto the surface shell and verifies
// the spherical parameterization invariant |xyz| = R.
func checkTransform(body []byte) *phase {
	p := &phase{name: "transform"}

	snapshot, err := domain.ExtractSnapshot(body)
	if err != nil {
		p.errorf("extract: %v", err)
		return p
	}
	for _, ev := range snapshot.Events {
		v := geo.LatLonToXYZ(ev.Lat, ev.Lon, geo.EarthRadiusKm)
		if d := math.Abs(v.Norm() - geo.EarthRadiusKm); d > 1e-6 {
			p.errorf("event %s: surface point off shell by %g km", ev.ID, d)
		}

		interior := geo.DepthToXYZ(ev.Lat, ev.Lon, ev.DepthKm, 1)
		want := geo.EarthRadiusKm - ev.DepthKm
		if d := math.Abs(interior.Norm() - want); d > 1e-6 {
			p.errorf("event %s: interior point off by %g km", ev.ID, d)
		}
	}
	return p
}
