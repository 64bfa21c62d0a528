package polymate

import (
	"fmt"
	"math"
	"strings"
)

// Lerp returns the value between a and b at fraction m of the way from a.
//
// The endpoints are exact: m == 0 yields a, m == 1 yields b and a == b yields
// b for every m.
func Lerp(a, b, m float64) (float64, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, fmt.Errorf("%w: lerp operands must be numbers, got %v and %v", ErrInvalidArgument, a, b)
	}
	if err := checkProgress(m); err != nil {
		return 0, err
	}
	return lerp(a, b, m), nil
}

func lerp(a, b, m float64) float64 {
	switch {
	case m == 0:
		return a
	case m == 1:
		return b
	case a < b:
		return a + (b-a)*m
	case a > b:
		return a - (a-b)*m
	default:
		return b
	}
}

func checkProgress(m float64) error {
	if math.IsNaN(m) {
		return fmt.Errorf("%w: progress is not a number", ErrInvalidArgument)
	}
	if m < 0 || m > 1 {
		return fmt.Errorf("%w: %v is not within [0, 1]", ErrOutOfRange, m)
	}
	return nil
}

// Interpolator morphs one vertex list into another. The endpoints are fixed
// at construction, so a single Interpolator can be reused for any number of
// forward and reverse runs and is safe for concurrent use.
type Interpolator struct {
	from, to Points
	codec    Codec
}

// NewInterpolator decodes the current and target point lists.
//
// It assumes the caller already checked that the points come from a polygon
// element; Bind does that for parsed documents.
func NewInterpolator(from, to string) (*Interpolator, error) {
	fromPoints, err := ParsePoints(from)
	if err != nil {
		return nil, fmt.Errorf("decoding from points: %w", err)
	}
	if strings.TrimSpace(to) == "" && len(fromPoints) > 0 {
		return nil, ErrMissingTarget
	}
	toPoints, err := ParsePoints(to)
	if err != nil {
		return nil, fmt.Errorf("decoding target points: %w", err)
	}
	return NewInterpolatorPoints(fromPoints, toPoints)
}

// NewInterpolatorPoints builds an Interpolator from decoded point lists. The
// lists are copied.
func NewInterpolatorPoints(from, to Points) (*Interpolator, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %d from points, %d target points", ErrLengthMismatch, len(from), len(to))
	}
	return &Interpolator{
		from:  append(Points(nil), from...),
		to:    append(Points(nil), to...),
		codec: DefaultCodec,
	}, nil
}

// SetCodec changes how Interpolate encodes its result. It must not be called
// while other goroutines use the Interpolator.
func (ip *Interpolator) SetCodec(c Codec) {
	ip.codec = c
}

// Len returns the number of vertices.
func (ip *Interpolator) Len() int {
	return len(ip.from)
}

// From returns a copy of the starting points.
func (ip *Interpolator) From() Points {
	return append(Points(nil), ip.from...)
}

// To returns a copy of the target points.
func (ip *Interpolator) To() Points {
	return append(Points(nil), ip.to...)
}

// At returns the vertices at the given progress.
func (ip *Interpolator) At(progress float64) (Points, error) {
	if err := checkProgress(progress); err != nil {
		return nil, err
	}
	points := make(Points, len(ip.from))
	for i, from := range ip.from {
		to := ip.to[i]
		points[i] = Point{
			X: lerp(from.X, to.X, progress),
			Y: lerp(from.Y, to.Y, progress),
		}
	}
	return points, nil
}

// Interpolate returns the encoded point list at the given progress.
func (ip *Interpolator) Interpolate(progress float64) (string, error) {
	points, err := ip.At(progress)
	if err != nil {
		return "", err
	}
	return ip.codec.Encode(points), nil
}

// Target returns the progress a run ends at: 1 plays towards the target
// points, 0 plays back towards the starting points.
func Target(reverse bool) float64 {
	if reverse {
		return 0
	}
	return 1
}
