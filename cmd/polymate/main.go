// Command polymate prints the points of an SVG polygon morphing towards its
// data-animate-to attribute.
//
// Usage:
//
//	polymate -in icon.svg -id menu -progress 0.5
//	polymate -in icon.svg -id menu -frames 10 -reverse
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	var (
		input     = flag.String("in", "", "Input SVG file")
		id        = flag.String("id", "", "Id of the polygon to animate (default: first polygon)")
		progress  = flag.Float64("progress", defaultProgress, "Progress between 0 and 1")
		frames    = flag.Int("frames", defaultFrames, "Print this many evenly spaced frames instead of a single progress")
		reverse   = flag.Bool("reverse", false, "Play frames from the target back to the starting points")
		precision = flag.Int("precision", defaultPrecision, "Decimal digits kept in the output")
		scale     = flag.Float64("scale", defaultScale, "Scale applied to coordinates (negative divides)")
	)
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("polymate: ")

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	polygon, err := loadPolygon(*input, *id, *scale, *precision)
	if err != nil {
		log.Fatalf("Failed to load polygon: %v", err)
	}

	var steps []float64
	if *frames > 0 {
		steps, err = frameProgress(*frames, *reverse)
		if err != nil {
			log.Fatalf("Invalid frame count: %v", err)
		}
	} else {
		steps = []float64{*progress}
	}

	if err := writeFrames(os.Stdout, polygon, steps, *frames > 0); err != nil {
		log.Fatalf("Interpolation failed: %v", err)
	}
}
