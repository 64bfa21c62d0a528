package polymate

import (
	"encoding/xml"
	"fmt"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

const (
	polygonTag    = "polygon"
	pointsAttr    = "points"
	animateToAttr = "data-animate-to"
	elementIDAttr = "id"
)

// Element is a shape element of an SVG document with its attributes.
type Element struct {
	Tag   string
	ID    string
	Attrs map[string]string
}

func newElement(start xml.StartElement) *Element {
	el := &Element{Tag: start.Name.Local, Attrs: make(map[string]string, len(start.Attr))}
	for _, attr := range start.Attr {
		el.Attrs[attr.Name.Local] = attr.Value
		if attr.Name.Local == elementIDAttr {
			el.ID = attr.Value
		}
	}
	return el
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// SetAttr sets the value of the named attribute.
func (e *Element) SetAttr(name, value string) {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[name] = value
}

// Polygon animates the points attribute of a polygon element towards its
// data-animate-to attribute.
//
// A Polygon writes to its element and is not safe for concurrent use.
type Polygon struct {
	Element *Element

	interp   *Interpolator
	progress float64
}

// Bind prepares el for animation. Both point lists are passed through t
// before interpolation.
func Bind(el *Element, t mt.Transform) (*Polygon, error) {
	if !strings.EqualFold(el.Tag, polygonTag) {
		return nil, fmt.Errorf("%w: <%s id=%q>", ErrElementType, el.Tag, el.ID)
	}
	to, ok := el.Attr(animateToAttr)
	if !ok || strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("%w: %q attribute is required on polygon %q", ErrMissingTarget, animateToAttr, el.ID)
	}
	from, _ := el.Attr(pointsAttr)

	fromPoints, err := ParsePoints(from)
	if err != nil {
		return nil, fmt.Errorf("polygon %q %s: %w", el.ID, pointsAttr, err)
	}
	toPoints, err := ParsePoints(to)
	if err != nil {
		return nil, fmt.Errorf("polygon %q %s: %w", el.ID, animateToAttr, err)
	}

	interp, err := NewInterpolatorPoints(fromPoints.Transform(t), toPoints.Transform(t))
	if err != nil {
		return nil, fmt.Errorf("polygon %q: %w", el.ID, err)
	}
	return &Polygon{Element: el, interp: interp}, nil
}

// Interpolator returns the interpolator driving the polygon.
func (p *Polygon) Interpolator() *Interpolator {
	return p.interp
}

// Step writes the points at the given progress into the element and returns
// them. On error the element is left untouched.
func (p *Polygon) Step(progress float64) (string, error) {
	points, err := p.interp.Interpolate(progress)
	if err != nil {
		return "", err
	}
	p.Element.SetAttr(pointsAttr, points)
	p.progress = progress
	return points, nil
}

// Progress returns the progress of the last successful Step, so a stopped
// run can be resumed or reversed from where it left off.
func (p *Polygon) Progress() float64 {
	return p.progress
}
