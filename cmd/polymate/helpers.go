package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vasalvit/polymate"
)

var errNoPolygon = errors.New("document has no polygon")

// loadPolygon parses the SVG file at path and binds the polygon with the
// given id, or the first polygon when id is empty.
func loadPolygon(path, id string, scale float64, precision int) (*polymate.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	svg, err := polymate.ParseSvgFromReader(f, filepath.Base(path), scale)
	if err != nil {
		return nil, err
	}

	var p *polymate.Polygon
	if id == "" {
		polygons := svg.Polygons()
		if len(polygons) == 0 {
			return nil, fmt.Errorf("%w: %s", errNoPolygon, path)
		}
		p, err = svg.AnimateElement(polygons[0])
	} else {
		p, err = svg.Animate(id)
	}
	if err != nil {
		return nil, err
	}
	p.Interpolator().SetCodec(polymate.Codec{Precision: precision})
	return p, nil
}

// frameProgress returns n evenly spaced progress values running towards the
// target of a forward or reverse run. Both ends are exact.
func frameProgress(n int, reverse bool) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least one frame, got %d", n)
	}
	if n == 1 {
		return []float64{polymate.Target(reverse)}, nil
	}
	steps := make([]float64, n)
	last := float64(n - 1)
	for i := range steps {
		if reverse {
			steps[i] = float64(n-1-i) / last
		} else {
			steps[i] = float64(i) / last
		}
	}
	return steps, nil
}

// writeFrames steps the polygon through every progress value and writes one
// line per step. With labels each line is prefixed by its progress.
func writeFrames(w io.Writer, p *polymate.Polygon, steps []float64, labels bool) error {
	for _, progress := range steps {
		points, err := p.Step(progress)
		if err != nil {
			return err
		}
		if labels {
			_, err = fmt.Fprintf(w, "%.4f\t%s\n", progress, points)
		} else {
			_, err = fmt.Fprintln(w, points)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
