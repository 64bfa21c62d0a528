package polymate

import (
	"errors"
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultPrecision is the number of decimal digits kept when encoding points.
const DefaultPrecision = 2

// Point is an X,Y coordinate of a polygon vertex
type Point struct {
	X, Y float64
}

// Points is an ordered vertex list. Order is vertex order and is preserved
// by every operation.
type Points []Point

// Codec converts between the SVG point-list syntax ("x1,y1 x2,y2 ...") and
// Points.
//
// Encoded coordinates are rounded to Precision decimal digits, half away from
// zero unless HalfEven is set, and written in their shortest form.
type Codec struct {
	Precision int
	HalfEven  bool
}

// DefaultCodec rounds to two decimals, half away from zero.
var DefaultCodec = Codec{Precision: DefaultPrecision}

var errNotFinite = errors.New("coordinate is not finite")

// Decode parses a whitespace separated list of "x,y" tokens. An empty or
// blank text yields an empty list.
func (c Codec) Decode(text string) (Points, error) {
	tokens := strings.Fields(text)
	points := make(Points, 0, len(tokens))
	for i, tok := range tokens {
		xs, ys, found := strings.Cut(tok, ",")
		if !found {
			return nil, &PointError{Index: i, Token: tok}
		}
		x, err := parseCoord(xs)
		if err != nil {
			return nil, &PointError{Index: i, Token: tok, Err: err}
		}
		y, err := parseCoord(ys)
		if err != nil {
			return nil, &PointError{Index: i, Token: tok, Err: err}
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// Encode writes points back in point-list syntax.
func (c Codec) Encode(points Points) string {
	var sb strings.Builder
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.formatCoord(p.X))
		sb.WriteByte(',')
		sb.WriteString(c.formatCoord(p.Y))
	}
	return sb.String()
}

func (c Codec) round(v float64) float64 {
	if c.HalfEven {
		v = scalar.RoundEven(v, c.Precision)
	} else {
		v = scalar.Round(v, c.Precision)
	}
	if v == 0 {
		// drop the sign of negative zero
		v = 0
	}
	return v
}

func (c Codec) formatCoord(v float64) string {
	return strconv.FormatFloat(c.round(v), 'f', -1, 64)
}

// ParsePoints decodes text with the DefaultCodec.
func ParsePoints(text string) (Points, error) {
	return DefaultCodec.Decode(text)
}

// Format encodes the points rounded to precision decimal digits.
func (ps Points) Format(precision int) string {
	return Codec{Precision: precision}.Encode(ps)
}

// String implements fmt.Stringer using the DefaultCodec.
func (ps Points) String() string {
	return DefaultCodec.Encode(ps)
}

// Transform returns a copy of the points with t applied to every vertex.
func (ps Points) Transform(t mt.Transform) Points {
	out := make(Points, len(ps))
	for i, p := range ps {
		out[i].X, out[i].Y = t.Apply(p.X, p.Y)
	}
	return out
}
